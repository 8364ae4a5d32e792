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

package tournament

import (
	"math"
	"slices"
)

// Tiebreaks is the ordering vector of a participant, compared field by field.
type Tiebreaks struct {
	Points int     // match points
	OMW    float64 // opponents' match-win percentage
	GW     float64 // game-win percentage
	OGW    float64 // opponents' game-win percentage
}

// Calculator computes tiebreaks from the match records in a Registry. Nothing
// is cached: every call reads the full history.
type Calculator struct {
	registry *Registry

	// Floor is the lowest match-win or game-win percentage a participant
	// can have.
	Floor float64

	// WinPoints is the match points for a win, the per-match maximum.
	WinPoints int
}

func NewCalculator(registry *Registry, floor float64, winPoints int) *Calculator {
	return &Calculator{
		registry:  registry,
		Floor:     floor,
		WinPoints: winPoints,
	}
}

// Compute returns the tiebreak vector of the given participant.
func (calc *Calculator) Compute(id ID) (Tiebreaks, error) {
	p, err := calc.registry.lookup(id)
	if err != nil {
		return Tiebreaks{}, err
	}

	return calc.compute(p), nil
}

func (calc *Calculator) compute(p *Participant) Tiebreaks {
	return Tiebreaks{
		Points: matchPoints(p),
		OMW:    calc.opponentsAverage(p, calc.matchWin),
		GW:     calc.gameWin(p),
		OGW:    calc.opponentsAverage(p, calc.gameWin),
	}
}

// MatchWinPercentage is the match points earned over the most that could
// have been earned in the matches played, byes included.
func (calc *Calculator) MatchWinPercentage(id ID) (float64, error) {
	p, err := calc.registry.lookup(id)
	if err != nil {
		return 0, err
	}

	return calc.matchWin(p), nil
}

// GameWinPercentage is the game points earned (3 per win, 1 per draw) over
// three times the games played.
func (calc *Calculator) GameWinPercentage(id ID) (float64, error) {
	p, err := calc.registry.lookup(id)
	if err != nil {
		return 0, err
	}

	return calc.gameWin(p), nil
}

// OpponentsMatchWinPercentage averages the match-win percentage of every
// opponent faced. An opponent met twice counts twice.
func (calc *Calculator) OpponentsMatchWinPercentage(id ID) (float64, error) {
	p, err := calc.registry.lookup(id)
	if err != nil {
		return 0, err
	}

	return calc.opponentsAverage(p, calc.matchWin), nil
}

// OpponentsGameWinPercentage averages the game-win percentage of every
// opponent faced.
func (calc *Calculator) OpponentsGameWinPercentage(id ID) (float64, error) {
	p, err := calc.registry.lookup(id)
	if err != nil {
		return 0, err
	}

	return calc.opponentsAverage(p, calc.gameWin), nil
}

func (calc *Calculator) matchWin(p *Participant) float64 {
	possible := calc.WinPoints * len(p.Records)
	if possible <= 0 {
		return calc.Floor
	}

	return math.Max(calc.Floor, float64(matchPoints(p))/float64(possible))
}

func (calc *Calculator) gameWin(p *Participant) float64 {
	var points, games int
	for _, record := range p.Records {
		points += record.GamePoints()
		games += record.Games()
	}

	if games == 0 {
		return calc.Floor
	}

	return math.Max(calc.Floor, float64(points)/float64(3*games))
}

// opponentsAverage averages metric over the participant's opponents, or
// returns the floor when there are none (a participant whose only round
// so far was a bye). Values are summed in ascending order so the same set
// of opponents always gives the same average.
func (calc *Calculator) opponentsAverage(p *Participant, metric func(*Participant) float64) float64 {
	var values []float64
	for _, record := range p.Records {
		if record.Bye {
			continue
		}

		opponent, found := calc.registry.byID[record.Opponent]
		if !found {
			continue
		}

		values = append(values, metric(opponent))
	}

	if len(values) == 0 {
		return calc.Floor
	}

	slices.Sort(values)

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

func matchPoints(p *Participant) int {
	var points int
	for _, record := range p.Records {
		points += record.Points
	}

	return points
}
