package tournament

import "fmt"

// Fallback chooses an opponent once every candidate left has already been
// met. Candidates are unpaired participants ordered best-ranked first; the
// returned value is an index into that slice.
type Fallback func(candidates []ID) int

// NewFallback returns the fallback policy with the given name.
func NewFallback(name string) (Fallback, error) {
	switch name {
	case "nearest", "":
		return Nearest, nil
	case "lowest":
		return Lowest, nil
	default:
		return nil, fmt.Errorf("new fallback: %w: %s", ErrUnknownFallback, name)
	}
}

// Nearest repeats against the nearest-ranked candidate.
func Nearest(candidates []ID) int {
	return 0
}

// Lowest repeats against the lowest-ranked candidate, keeping the nearer
// ones free for the participants still to be paired.
func Lowest(candidates []ID) int {
	return len(candidates) - 1
}
