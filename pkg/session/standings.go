package session

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"laptudirm.com/x/swiss/pkg/tournament"
)

// PrintStandings writes the standings as an aligned table.
func (s *Session) PrintStandings(standings []tournament.Standing) {
	heading.Fprint(s.Out, "\n=== RESULTS ===\n\n")
	fmt.Fprint(s.Out, FormatStandings(standings))
}

// FormatStandings renders standings with columns Rank, Name, MP, OMWP, GWP
// and OGWP.
func FormatStandings(standings []tournament.Standing) string {
	header := []string{"Rank", "Name", "MP", "OMWP", "GWP", "OGWP"}

	rows := make([][]string, len(standings))
	for i, standing := range standings {
		rows[i] = []string{
			fmt.Sprintf("%d.", standing.Rank),
			standing.Name,
			fmt.Sprint(standing.Points),
			fmt.Sprintf("%.2f", standing.OMW),
			fmt.Sprintf("%.2f", standing.GW),
			fmt.Sprintf("%.2f", standing.OGW),
		}
	}

	// Compute column widths
	widths := make([]int, len(header))
	for i, title := range header {
		widths[i] = len(title)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}

			if i == len(cells)-1 {
				sb.WriteString(cell)
				break
			}

			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)))
		}
		sb.WriteString("\n")
	}

	writeRow(header)
	dashes := make([]string, len(header))
	for i, title := range header {
		dashes[i] = strings.Repeat("-", len(title))
	}
	writeRow(dashes)

	for _, row := range rows {
		writeRow(row)
	}

	return sb.String()
}

// Report is the YAML export of a finished tournament.
type Report struct {
	Rounds    int                   `yaml:"rounds"`
	Seed      int64                 `yaml:"seed"`
	Repeats   int                   `yaml:"forced-repeats"`
	Points    tournament.Points     `yaml:"points"`
	Standings []tournament.Standing `yaml:"standings"`
}

func NewReport(tour *tournament.Tournament, standings []tournament.Standing) Report {
	return Report{
		Rounds:    tour.Rounds(),
		Seed:      tour.Seed(),
		Repeats:   tour.Repeats(),
		Points:    tour.Config().Points,
		Standings: standings,
	}
}

// WriteYAML encodes the report with two space indentation.
func WriteYAML(w io.Writer, report Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("write standings: %w", err)
	}

	return encoder.Close()
}
