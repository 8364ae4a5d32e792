// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tournament

import (
	"math/rand"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NewTournament registers the given names, in order, and plans the rounds.
// The order of names is the seeding used to pair the first round.
func NewTournament(names []string, config Config) (*Tournament, error) {
	var tour Tournament
	tour.config = config

	if err := config.validate(); err != nil {
		return nil, err
	}

	var err error
	tour.fallback, err = NewFallback(config.Fallback)
	if err != nil {
		return nil, err
	}

	tour.rng, tour.seed, err = newRand(config.Seed)
	if err != nil {
		return nil, err
	}

	if config.Shuffle {
		names = slices.Clone(names)
		tour.rng.Shuffle(len(names), func(i, j int) {
			names[i], names[j] = names[j], names[i]
		})
	}

	tour.registry = NewRegistry()
	for _, name := range names {
		if _, err := tour.registry.Register(name); err != nil {
			return nil, err
		}
	}

	if tour.registry.Len() < 2 {
		return nil, ErrInsufficientParticipants
	}

	tour.rounds = config.Rounds
	if tour.rounds == 0 {
		tour.rounds = RequiredRounds(tour.registry.Len())
	}

	tour.calc = NewCalculator(tour.registry, config.Floor, config.Points.Win)
	tour.history = NewHistory()
	tour.byes = make(map[ID]bool)

	logrus.WithFields(logrus.Fields{
		"participants": tour.registry.Len(),
		"rounds":       tour.rounds,
		"seed":         tour.seed,
	}).Debug("New tournament")

	return &tour, nil
}

// Tournament is the state of one Swiss tournament. It is not safe for
// concurrent use; independent tournaments share nothing.
type Tournament struct {
	config Config

	registry *Registry
	calc     *Calculator
	history  *History
	byes     map[ID]bool
	fallback Fallback

	rng  *rand.Rand
	seed int64

	round, rounds int

	// pairings of the current round
	pairings []Pairing
	repeats  int
}

// NextRound pairs the next round. The pairings are presented in random
// order, numbered from table 1, with the bye (if any) at the last table.
func (tour *Tournament) NextRound() ([]Pairing, error) {
	if len(tour.Pending()) > 0 {
		return nil, ErrRoundInProgress
	}

	if tour.round >= tour.rounds {
		return nil, ErrTournamentComplete
	}

	plan, err := Pair(tour.ranking(), tour.history, tour.byes, tour.fallback)
	if err != nil {
		return nil, err
	}

	tour.round++
	tour.repeats += plan.Repeats

	// presentation order only, membership is already settled
	tour.rng.Shuffle(len(plan.Pairs), func(i, j int) {
		plan.Pairs[i], plan.Pairs[j] = plan.Pairs[j], plan.Pairs[i]
	})

	tour.pairings = make([]Pairing, 0, len(plan.Pairs)+1)
	for i, pair := range plan.Pairs {
		tour.pairings = append(tour.pairings, Pairing{
			ID:    uuid.New(),
			Round: tour.round,
			Table: i + 1,
			Home:  pair[0],
			Away:  pair[1],
		})
	}

	if plan.Bye != uuid.Nil {
		if err := tour.grantBye(plan.Bye); err != nil {
			return nil, err
		}

		tour.pairings = append(tour.pairings, byePairing(tour.round, len(tour.pairings)+1, plan.Bye))
	}

	logrus.WithFields(logrus.Fields{
		"round":    tour.round,
		"pairings": len(plan.Pairs),
		"repeats":  plan.Repeats,
	}).Debug("Paired round")

	return tour.Pairings(), nil
}

// ranking is the order the next round is paired in. Before any results the
// registration order is used as the seeding.
func (tour *Tournament) ranking() []ID {
	if tour.round == 0 {
		ids := make([]ID, 0, tour.registry.Len())
		for _, p := range tour.registry.participants {
			ids = append(ids, p.ID)
		}
		return ids
	}

	standings := Rank(tour.registry, tour.calc, tour.rng)
	ids := make([]ID, len(standings))
	for i, standing := range standings {
		ids[i] = standing.ID
	}

	return ids
}

// Standings ranks every participant. Ties left after every tiebreak are
// ordered at random on each call.
func (tour *Tournament) Standings() []Standing {
	return Rank(tour.registry, tour.calc, tour.rng)
}

// Tiebreaks returns the tiebreak vector of a participant.
func (tour *Tournament) Tiebreaks(id ID) (Tiebreaks, error) {
	return tour.calc.Compute(id)
}

// Pairings returns the pairings of the current round.
func (tour *Tournament) Pairings() []Pairing {
	pairings := make([]Pairing, len(tour.pairings))
	for i, pairing := range tour.pairings {
		if pairing.Result != nil {
			result := *pairing.Result
			pairing.Result = &result
		}
		pairings[i] = pairing
	}

	return pairings
}

// Pending returns the pairings of the current round still awaiting a result.
func (tour *Tournament) Pending() []Pairing {
	var pending []Pairing
	for _, pairing := range tour.pairings {
		if !pairing.Recorded() {
			pending = append(pending, pairing)
		}
	}

	return pending
}

// Name returns the display name of a participant, or "" if it's unknown.
func (tour *Tournament) Name(id ID) string {
	p, err := tour.registry.lookup(id)
	if err != nil {
		return ""
	}

	return p.Name
}

// Round returns the number of the current round, 0 before the first.
func (tour *Tournament) Round() int { return tour.round }

// Rounds returns the number of planned rounds.
func (tour *Tournament) Rounds() int { return tour.rounds }

// Finished reports whether every planned round has been played and recorded.
func (tour *Tournament) Finished() bool {
	return tour.round >= tour.rounds && len(tour.Pending()) == 0
}

// Seed returns the seed of the tournament's random source.
func (tour *Tournament) Seed() int64 { return tour.seed }

// Config returns a copy of the configuration the tournament was created
// with. The seed is the one drawn, if none was given.
func (tour *Tournament) Config() Config {
	config := tour.config
	config.Seed = tour.seed
	return config
}

// Repeats returns how many pairings so far were forced repeats.
func (tour *Tournament) Repeats() int { return tour.repeats }

func (tour *Tournament) Registry() *Registry { return tour.registry }

// Met reports whether two participants have been paired in any round.
func (tour *Tournament) Met(a, b ID) bool { return tour.history.Met(a, b) }
