package tournament_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"laptudirm.com/x/swiss/pkg/tournament"
)

const delta = 1e-12

// TiebreakSuite checks the percentages against hand-computed records.
type TiebreakSuite struct {
	suite.Suite

	registry *tournament.Registry
	calc     *tournament.Calculator
	points   tournament.Points
}

func (s *TiebreakSuite) SetupTest() {
	config := tournament.DefaultConfig()
	s.registry = tournament.NewRegistry()
	s.calc = tournament.NewCalculator(s.registry, config.Floor, config.Points.Win)
	s.points = config.Points
}

func (s *TiebreakSuite) register(name string) tournament.ID {
	id, err := s.registry.Register(name)
	require.NoError(s.T(), err)
	return id
}

// matches gives id n matches of the given outcome against unregistered
// opponents.
func (s *TiebreakSuite) matches(id tournament.ID, outcome tournament.Outcome, n int) {
	for i := 0; i < n; i++ {
		require.NoError(s.T(), s.registry.ApplyResult(id, tournament.MatchRecord{
			Opponent: uuid.New(),
			Outcome:  outcome,
			Points:   s.points.For(outcome),
		}))
	}
}

// play applies a mirrored result between a and b, score from a's side.
func (s *TiebreakSuite) play(a, b tournament.ID, score tournament.Score) {
	drawn := 0
	if score.Home == score.Away {
		drawn = 1
	}

	record := func(opponent tournament.ID, score tournament.Score) tournament.MatchRecord {
		return tournament.MatchRecord{
			Opponent: opponent,
			Won:      score.Home,
			Lost:     score.Away,
			Drawn:    drawn,
			Outcome:  score.Outcome(),
			Points:   s.points.For(score.Outcome()),
		}
	}

	require.NoError(s.T(), s.registry.ApplyResult(a, record(b, score)))
	require.NoError(s.T(), s.registry.ApplyResult(b, record(a, score.Reverse())))
}

func (s *TiebreakSuite) bye(id tournament.ID) {
	require.NoError(s.T(), s.registry.ApplyResult(id, tournament.MatchRecord{
		Bye: true, Won: 2, Outcome: tournament.Win, Points: s.points.Bye,
	}))
}

func (s *TiebreakSuite) mwp(id tournament.ID) float64 {
	v, err := s.calc.MatchWinPercentage(id)
	require.NoError(s.T(), err)
	return v
}

func (s *TiebreakSuite) TestMatchWinFiveTwoOne() {
	p := s.register("5-2-1")
	s.matches(p, tournament.Win, 5)
	s.matches(p, tournament.Loss, 2)
	s.matches(p, tournament.Draw, 1)

	got, err := s.registry.Get(p)
	require.NoError(s.T(), err)
	s.Equal(16, got.Points)
	s.InDelta(2.0/3.0, s.mwp(p), delta)
}

func (s *TiebreakSuite) TestMatchWinFloor() {
	p := s.register("1-3-0")
	s.matches(p, tournament.Win, 1)
	s.matches(p, tournament.Loss, 3)

	s.InDelta(1.0/3.0, s.mwp(p), delta)
}

func (s *TiebreakSuite) TestMatchWinWithBye() {
	p := s.register("Bye-3-2-0")
	s.bye(p)
	for i := 0; i < 2; i++ {
		s.matches(p, tournament.Win, 1)
		s.matches(p, tournament.Loss, 1)
	}

	s.InDelta(0.6, s.mwp(p), delta)
}

func (s *TiebreakSuite) TestNothingPlayed() {
	p := s.register("Fresh")

	tb, err := s.calc.Compute(p)
	require.NoError(s.T(), err)
	s.Equal(tournament.Tiebreaks{Points: 0, OMW: 1.0 / 3.0, GW: 1.0 / 3.0, OGW: 1.0 / 3.0}, tb)
}

func (s *TiebreakSuite) TestGameWinTwentyOneOfTen() {
	p := s.register("21-10")
	s.play(p, s.register("Opponent 1"), tournament.Score{Home: 2, Away: 0})
	s.play(p, s.register("Opponent 2"), tournament.Score{Home: 2, Away: 1})
	s.play(p, s.register("Opponent 3"), tournament.Score{Home: 1, Away: 2})
	s.play(p, s.register("Opponent 4"), tournament.Score{Home: 2, Away: 0})

	gw, err := s.calc.GameWinPercentage(p)
	require.NoError(s.T(), err)
	s.InDelta(0.7, gw, delta)
}

func (s *TiebreakSuite) TestGameWinFloor() {
	p := s.register("9-11")
	s.play(p, s.register("Opponent 1"), tournament.Score{Home: 1, Away: 2})
	s.play(p, s.register("Opponent 2"), tournament.Score{Home: 1, Away: 2})
	s.play(p, s.register("Opponent 3"), tournament.Score{Home: 0, Away: 2})
	s.play(p, s.register("Opponent 4"), tournament.Score{Home: 1, Away: 2})

	gw, err := s.calc.GameWinPercentage(p)
	require.NoError(s.T(), err)
	s.InDelta(1.0/3.0, gw, delta)
}

func (s *TiebreakSuite) TestGameWinSplitCountsDrawnGame() {
	a, b := s.register("A"), s.register("B")
	s.play(a, b, tournament.Score{Home: 1, Away: 1})

	// 4 game points out of 9 for both
	for _, id := range []tournament.ID{a, b} {
		gw, err := s.calc.GameWinPercentage(id)
		require.NoError(s.T(), err)
		s.InDelta(4.0/9.0, gw, delta)
	}
}

func (s *TiebreakSuite) TestGameWinBye() {
	p := s.register("Bye")
	s.bye(p)

	gw, err := s.calc.GameWinPercentage(p)
	require.NoError(s.T(), err)
	s.InDelta(1.0, gw, delta)
}

// opponents registers opponents with the given win/loss/draw records and
// links each to p with a loss for p.
func (s *TiebreakSuite) opponents(p tournament.ID, records [][3]int) {
	for i, wld := range records {
		opp := s.register(string(rune('A' + i)))
		s.matches(opp, tournament.Win, wld[0])
		s.matches(opp, tournament.Loss, wld[1])
		s.matches(opp, tournament.Draw, wld[2])

		require.NoError(s.T(), s.registry.ApplyResult(p, tournament.MatchRecord{
			Opponent: opp,
			Outcome:  tournament.Loss,
		}))
	}
}

func (s *TiebreakSuite) TestOpponentsMatchWin() {
	p := s.register("Normal")
	s.opponents(p, [][3]int{
		{4, 4, 0}, {7, 1, 0}, {1, 3, 1}, {3, 3, 1},
		{6, 2, 0}, {5, 2, 1}, {4, 3, 1}, {6, 1, 1},
	})

	want := (12.0/24.0 + 21.0/24.0 + 1.0/3.0 + 10.0/21.0 +
		18.0/24.0 + 16.0/24.0 + 13.0/24.0 + 19.0/24.0) / 8.0

	omw, err := s.calc.OpponentsMatchWinPercentage(p)
	require.NoError(s.T(), err)
	s.InDelta(want, omw, delta)
}

func (s *TiebreakSuite) TestOpponentsMatchWinSkipsBye() {
	p := s.register("Bye")
	s.bye(p)
	s.opponents(p, [][3]int{
		{7, 1, 0}, {1, 3, 1}, {3, 3, 1},
		{6, 2, 0}, {5, 2, 1}, {4, 3, 1}, {6, 1, 1},
	})

	want := (21.0/24.0 + 1.0/3.0 + 10.0/21.0 +
		18.0/24.0 + 16.0/24.0 + 13.0/24.0 + 19.0/24.0) / 7.0

	omw, err := s.calc.OpponentsMatchWinPercentage(p)
	require.NoError(s.T(), err)
	s.InDelta(want, omw, delta)
}

func (s *TiebreakSuite) TestOpponentsMatchWinIgnoresOrder() {
	calc := tournament.NewCalculator(s.registry, 0, 3)

	opponents := make([]tournament.ID, 3)
	for i := range opponents {
		opponents[i] = s.register(string(rune('A' + i)))
		s.matches(opponents[i], tournament.Win, i+1)
		s.matches(opponents[i], tournament.Loss, 9-i)
	}

	forward, backward := s.register("Forward"), s.register("Backward")
	for i := range opponents {
		s.play(forward, opponents[i], tournament.Score{Home: 0, Away: 2})
		s.play(backward, opponents[len(opponents)-1-i], tournament.Score{Home: 0, Away: 2})
	}

	a, err := calc.OpponentsMatchWinPercentage(forward)
	require.NoError(s.T(), err)
	b, err := calc.OpponentsMatchWinPercentage(backward)
	require.NoError(s.T(), err)
	s.Equal(a, b)

	tbA, err := calc.Compute(forward)
	require.NoError(s.T(), err)
	tbB, err := calc.Compute(backward)
	require.NoError(s.T(), err)
	s.Zero(tbA.Compare(tbB))
}

func (s *TiebreakSuite) TestOpponentsGameWin() {
	p, a, b := s.register("P"), s.register("A"), s.register("B")
	s.play(p, a, tournament.Score{Home: 2, Away: 0}) // a: 0/6 -> floor
	s.play(p, b, tournament.Score{Home: 1, Away: 2}) // b: 6/9

	ogw, err := s.calc.OpponentsGameWinPercentage(p)
	require.NoError(s.T(), err)
	s.InDelta((1.0/3.0+2.0/3.0)/2, ogw, delta)
}

func (s *TiebreakSuite) TestComputeIsPure() {
	p, a, b := s.register("P"), s.register("A"), s.register("B")
	s.play(p, a, tournament.Score{Home: 2, Away: 1})
	s.play(p, b, tournament.Score{Home: 1, Away: 1})
	s.play(a, b, tournament.Score{Home: 0, Away: 2})

	first, err := s.calc.Compute(p)
	require.NoError(s.T(), err)
	second, err := s.calc.Compute(p)
	require.NoError(s.T(), err)
	s.Equal(first, second)
	s.Equal(4, first.Points)
}

func (s *TiebreakSuite) TestUnknown() {
	_, err := s.calc.Compute(uuid.New())
	s.ErrorIs(err, tournament.ErrUnknownParticipant)

	_, err = s.calc.OpponentsGameWinPercentage(uuid.New())
	s.ErrorIs(err, tournament.ErrUnknownParticipant)
}

func TestTiebreakSuite(t *testing.T) {
	suite.Run(t, new(TiebreakSuite))
}
