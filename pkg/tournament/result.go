package tournament

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// RecordResult applies the score of the pairing at the given table of the
// current round. home and away are the games won by each side. When an error
// is returned nothing has changed and the result can be reported again.
func (tour *Tournament) RecordResult(table, home, away int) error {
	pairing, err := tour.pending(table)
	if err != nil {
		return err
	}

	score, err := ParseScore(home, away)
	if err != nil {
		return err
	}

	// check both sides before touching either
	if _, err := tour.registry.lookup(pairing.Home); err != nil {
		return err
	}
	if _, err := tour.registry.lookup(pairing.Away); err != nil {
		return err
	}

	homeRecord := tour.matchRecord(pairing, pairing.Away, score)
	awayRecord := tour.matchRecord(pairing, pairing.Home, score.Reverse())

	_ = tour.registry.ApplyResult(pairing.Home, homeRecord)
	_ = tour.registry.ApplyResult(pairing.Away, awayRecord)
	pairing.Result = &score

	logrus.WithFields(logrus.Fields{
		"round": pairing.Round,
		"table": pairing.Table,
		"score": score,
	}).Debug("Recorded result")

	return nil
}

// pending returns the current round's pairing at table if it still needs a
// result.
func (tour *Tournament) pending(table int) (*Pairing, error) {
	for i := range tour.pairings {
		pairing := &tour.pairings[i]
		if pairing.Table != table {
			continue
		}

		switch {
		case pairing.Bye:
			return nil, fmt.Errorf("%w: table %d", ErrByePairing, table)
		case pairing.Recorded():
			return nil, fmt.Errorf("%w: table %d", ErrAlreadyRecorded, table)
		}

		return pairing, nil
	}

	return nil, fmt.Errorf("%w: round %d has no table %d", ErrUnknownPairing, tour.round, table)
}

// matchRecord builds the record of one side of a pairing, with score given
// from that side's point of view.
func (tour *Tournament) matchRecord(pairing *Pairing, opponent ID, score Score) MatchRecord {
	outcome := score.Outcome()
	return MatchRecord{
		Round:    pairing.Round,
		Opponent: opponent,
		Won:      score.Home,
		Lost:     score.Away,
		Drawn:    score.drawn(),
		Outcome:  outcome,
		Points:   tour.config.Points.For(outcome),
	}
}

// grantBye awards the bye of the current round to id: a match win on two
// games won, worth the configured bye points.
func (tour *Tournament) grantBye(id ID) error {
	err := tour.registry.ApplyResult(id, MatchRecord{
		Round:   tour.round,
		Bye:     true,
		Won:     2,
		Outcome: Win,
		Points:  tour.config.Points.Bye,
	})
	if err != nil {
		return err
	}

	tour.byes[id] = true
	logrus.WithFields(logrus.Fields{
		"round":       tour.round,
		"participant": id,
	}).Debug("Granted bye")

	return nil
}
