// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
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

// Package simulate plays many tournaments with random results and checks
// every round they pair.
package simulate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"laptudirm.com/x/swiss/pkg/tournament"
)

// ErrInvariant is returned when a round breaks a pairing invariant.
var ErrInvariant = errors.New("simulate: pairing invariant violated")

type Options struct {
	Players int
	Runs    int

	// Concurrency limits the tournaments played at once. Zero uses
	// GOMAXPROCS.
	Concurrency int

	// Seed of the first run; run i uses Seed+i. Zero gives every run a
	// fresh seed.
	Seed int64

	Config tournament.Config

	// Progress, if set, is called after every finished run with the number
	// of runs done so far. Calls are serialized.
	Progress func(done int)
}

type Report struct {
	Runs    int `yaml:"runs"`
	Players int `yaml:"players"`
	Rounds  int `yaml:"rounds"`

	// Repeats is the total number of forced repeat pairings.
	Repeats int `yaml:"forced-repeats"`

	// ForcedRounds is the number of rounds with at least one forced
	// repeat, ForcedRuns the number of tournaments.
	ForcedRounds int `yaml:"forced-rounds"`
	ForcedRuns   int `yaml:"forced-runs"`

	// Seeds of the tournaments which needed a forced repeat.
	ForcedSeeds []int64 `yaml:"forced-seeds,omitempty"`
}

type result struct {
	seed    int64
	rounds  int
	repeats int
	forced  int
}

// Run plays opts.Runs independent tournaments concurrently. The first
// error, or a cancelled context, stops the remaining runs.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Players < 2 {
		return Report{}, fmt.Errorf("simulate: %w", tournament.ErrInsufficientParticipants)
	}

	if opts.Runs < 1 {
		return Report{}, fmt.Errorf("simulate: need at least one run, got %d", opts.Runs)
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	names := make([]string, opts.Players)
	for i := range names {
		names[i] = fmt.Sprintf("Player %d", i+1)
	}

	report := Report{Runs: opts.Runs, Players: opts.Players}
	var mu sync.Mutex
	done := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := 0; i < opts.Runs; i++ {
		config := opts.Config
		if opts.Seed != 0 {
			config.Seed = opts.Seed + int64(i)
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := play(names, config)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()

			report.Rounds = res.rounds
			report.Repeats += res.repeats
			report.ForcedRounds += res.forced
			if res.repeats > 0 {
				report.ForcedRuns++
				report.ForcedSeeds = append(report.ForcedSeeds, res.seed)
			}

			done++
			if opts.Progress != nil {
				opts.Progress(done)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	logrus.WithFields(logrus.Fields{
		"runs":    report.Runs,
		"repeats": report.Repeats,
	}).Debug("Simulation finished")

	return report, nil
}

// play runs one tournament to the end with uniformly random valid scores.
func play(names []string, config tournament.Config) (result, error) {
	tour, err := tournament.NewTournament(names, config)
	if err != nil {
		return result{}, err
	}

	res := result{seed: tour.Seed(), rounds: tour.Rounds()}
	scores := tournament.Scores()
	rng := rand.New(rand.NewSource(tour.Seed()))
	var ids []tournament.ID
	for _, p := range tour.Registry().Participants() {
		ids = append(ids, p.ID)
	}
	checker := newChecker(ids)

	for !tour.Finished() {
		before := tour.Repeats()

		pairings, err := tour.NextRound()
		if err != nil {
			return res, err
		}

		forced := tour.Repeats() - before
		if err := checker.check(tour.Round(), pairings, forced); err != nil {
			return res, fmt.Errorf("seed %d: %w", tour.Seed(), err)
		}

		if forced > 0 {
			res.forced++
			logrus.WithFields(logrus.Fields{
				"seed":    tour.Seed(),
				"round":   tour.Round(),
				"repeats": forced,
			}).Trace("Round needed a forced repeat")
		}

		for _, pairing := range pairings {
			if pairing.Bye {
				continue
			}

			score := scores[rng.Intn(len(scores))]
			if err := tour.RecordResult(pairing.Table, score.Home, score.Away); err != nil {
				return res, err
			}
		}
	}

	res.repeats = tour.Repeats()
	return res, nil
}
