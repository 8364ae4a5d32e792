package simulate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/swiss/pkg/simulate"
	"laptudirm.com/x/swiss/pkg/tournament"
)

func TestRun(t *testing.T) {
	for _, players := range []int{2, 3, 8, 13, 32} {
		var calls int
		report, err := simulate.Run(context.Background(), simulate.Options{
			Players:     players,
			Runs:        25,
			Concurrency: 4,
			Seed:        1,
			Config:      tournament.DefaultConfig(),
			Progress:    func(int) { calls++ },
		})
		require.NoError(t, err, "players=%d", players)

		assert.Equal(t, 25, report.Runs)
		assert.Equal(t, players, report.Players)
		assert.Equal(t, tournament.RequiredRounds(players), report.Rounds)
		assert.Equal(t, 25, calls)
		assert.Len(t, report.ForcedSeeds, report.ForcedRuns)
		assert.LessOrEqual(t, report.ForcedRounds, report.Repeats)
	}
}

func TestRunIsReproducible(t *testing.T) {
	opts := simulate.Options{
		Players: 9,
		Runs:    40,
		Seed:    7,
		Config:  tournament.DefaultConfig(),
	}
	opts.Config.Rounds = 6

	first, err := simulate.Run(context.Background(), opts)
	require.NoError(t, err)

	opts.Concurrency = 1
	second, err := simulate.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, first.Repeats, second.Repeats)
	assert.Equal(t, first.ForcedRounds, second.ForcedRounds)
	assert.ElementsMatch(t, first.ForcedSeeds, second.ForcedSeeds)
}

func TestRunLongTournamentsForceRepeats(t *testing.T) {
	// four players can't play five rounds without meeting twice
	opts := simulate.Options{Players: 4, Runs: 3, Seed: 3, Config: tournament.DefaultConfig()}
	opts.Config.Rounds = 5

	report, err := simulate.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 3, report.ForcedRuns)
	assert.Positive(t, report.Repeats)
}

func TestRunErrors(t *testing.T) {
	_, err := simulate.Run(context.Background(), simulate.Options{Players: 1, Runs: 1, Config: tournament.DefaultConfig()})
	assert.ErrorIs(t, err, tournament.ErrInsufficientParticipants)

	_, err = simulate.Run(context.Background(), simulate.Options{Players: 4, Runs: 0, Config: tournament.DefaultConfig()})
	assert.Error(t, err)

	bad := tournament.DefaultConfig()
	bad.Fallback = "sideways"
	_, err = simulate.Run(context.Background(), simulate.Options{Players: 4, Runs: 2, Config: bad})
	assert.ErrorIs(t, err, tournament.ErrUnknownFallback)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = simulate.Run(ctx, simulate.Options{Players: 4, Runs: 2, Config: tournament.DefaultConfig()})
	assert.ErrorIs(t, err, context.Canceled)
}
