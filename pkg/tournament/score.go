package tournament

import "fmt"

// Outcome is the result of a match from one participant's point of view.
type Outcome int

const (
	Win  Outcome = +1
	Draw Outcome = 0
	Loss Outcome = -1
)

// Flip returns the outcome as seen by the opponent.
func (outcome Outcome) Flip() Outcome {
	return -outcome
}

func (outcome Outcome) String() string {
	switch outcome {
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Loss:
		return "loss"
	default:
		return "?"
	}
}

// Score is the number of games won by each side of a best-of-three match.
type Score struct {
	Home int `yaml:"home"`
	Away int `yaml:"away"`
}

var validScores = []Score{
	{2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2},
}

// Scores returns every score a match can legally end with.
func Scores() []Score {
	return append([]Score(nil), validScores...)
}

// ParseScore validates a reported score pair.
func ParseScore(home, away int) (Score, error) {
	score := Score{Home: home, Away: away}
	for _, valid := range validScores {
		if score == valid {
			return score, nil
		}
	}

	return Score{}, ScoreError{Home: home, Away: away}
}

// Outcome returns the match outcome for the home side.
func (score Score) Outcome() Outcome {
	switch {
	case score.Home > score.Away:
		return Win
	case score.Home < score.Away:
		return Loss
	default:
		return Draw
	}
}

// Reverse returns the score from the away side's point of view.
func (score Score) Reverse() Score {
	return Score{Home: score.Away, Away: score.Home}
}

// drawn is the number of drawn games implied by the score. A 1-1 split
// means the deciding game was drawn.
func (score Score) drawn() int {
	if score.Home == score.Away {
		return 1
	}

	return 0
}

func (score Score) String() string {
	return fmt.Sprintf("%d-%d", score.Home, score.Away)
}

// Points is the match point table. Bye is awarded to the participant left
// unpaired in a round with an odd number of participants.
type Points struct {
	Win  int `yaml:"win"`
	Draw int `yaml:"draw"`
	Loss int `yaml:"loss"`
	Bye  int `yaml:"bye"`
}

// For returns the match points for the given outcome.
func (points Points) For(outcome Outcome) int {
	switch outcome {
	case Win:
		return points.Win
	case Draw:
		return points.Draw
	default:
		return points.Loss
	}
}
