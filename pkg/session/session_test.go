package session_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/swiss/pkg/session"
	"laptudirm.com/x/swiss/pkg/tournament"
)

func init() {
	color.NoColor = true
}

func newTournament(t *testing.T, names ...string) *tournament.Tournament {
	t.Helper()

	config := tournament.DefaultConfig()
	config.Seed = 11
	tour, err := tournament.NewTournament(names, config)
	require.NoError(t, err)
	return tour
}

func TestPlay(t *testing.T) {
	tour := newTournament(t, "Alice", "Bob")

	// a typo, then an impossible score, then a real one
	in := strings.NewReader("two\n3\n0\n2\n1\n")
	var out, errs bytes.Buffer

	s := session.New(in, &out, &errs)
	require.NoError(t, s.Play(tour))
	assert.True(t, tour.Finished())

	assert.Contains(t, out.String(), "=== ROUND 1/1 ===")
	assert.Equal(t, 3, strings.Count(out.String(), "PAIRING:"))
	assert.Contains(t, out.String(), "[1] ")
	assert.Contains(t, out.String(), "[2] ")

	assert.Contains(t, errs.String(), "could not parse score into integer")
	assert.Contains(t, errs.String(), "Error recording result")

	standings := tour.Standings()
	assert.Equal(t, 3, standings[0].Points)
	assert.Equal(t, 0, standings[1].Points)
}

func TestPlayPrintsBye(t *testing.T) {
	tour := newTournament(t, "Alice", "Bob", "Carol")

	// two rounds, one game each
	in := strings.NewReader("2\n0\n1\n1\n")
	var out bytes.Buffer

	require.NoError(t, session.New(in, &out, io.Discard).Play(tour))
	assert.Contains(t, out.String(), "BYE: Carol")
	assert.Contains(t, out.String(), "=== ROUND 2/2 ===")
	assert.Equal(t, 2, strings.Count(out.String(), "BYE: "))
}

func TestPlayUnexpectedEOF(t *testing.T) {
	tour := newTournament(t, "Alice", "Bob")

	err := session.New(strings.NewReader("2\n"), io.Discard, io.Discard).Play(tour)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Len(t, tour.Pending(), 1)

	// picking the same round back up
	require.NoError(t, session.New(strings.NewReader("1\n1\n"), io.Discard, io.Discard).Play(tour))
	assert.True(t, tour.Finished())
}

func TestFormatStandings(t *testing.T) {
	table := session.FormatStandings([]tournament.Standing{
		{Rank: 1, Name: "Alexandra", Points: 6, OMW: 0.5, GW: 0.75, OGW: 1.0 / 3.0},
		{Rank: 2, Name: "Bo", Points: 0, OMW: 1, GW: 1.0 / 3.0, OGW: 0.5},
	})

	lines := strings.Split(strings.TrimSuffix(table, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "Rank  Name       MP  OMWP  GWP   OGWP", lines[0])
	assert.Equal(t, "----  ----       --  ----  ---   ----", lines[1])
	assert.Equal(t, "1.    Alexandra  6   0.50  0.75  0.33", lines[2])
	assert.Equal(t, "2.    Bo         0   1.00  0.33  0.50", lines[3])
}

func TestWriteYAML(t *testing.T) {
	tour := newTournament(t, "Alice", "Bob")
	require.NoError(t, session.New(strings.NewReader("2\n0\n"), io.Discard, io.Discard).Play(tour))

	var buf bytes.Buffer
	require.NoError(t, session.WriteYAML(&buf, session.NewReport(tour, tour.Standings())))

	out := buf.String()
	assert.Contains(t, out, "rounds: 1\n")
	assert.Contains(t, out, "seed: 11\n")
	assert.Contains(t, out, "points:\n  win: 3\n  draw: 1\n  loss: 0\n  bye: 3\n")
	assert.Contains(t, out, "standings:\n  - rank: 1\n")
	assert.Contains(t, out, "    match-points: 3\n")
	assert.Contains(t, out, "    name: Bob\n")
}
