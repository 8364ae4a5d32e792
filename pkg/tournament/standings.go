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
	"cmp"
	"math/bits"
	"math/rand"
	"slices"
)

// Standing is one row of the standings table.
type Standing struct {
	Rank int    `yaml:"rank"`
	ID   ID     `yaml:"id"`
	Name string `yaml:"name"`

	Points int     `yaml:"match-points"`
	OMW    float64 `yaml:"omw"`
	GW     float64 `yaml:"gw"`
	OGW    float64 `yaml:"ogw"`

	Wins   int  `yaml:"wins"`
	Losses int  `yaml:"losses"`
	Draws  int  `yaml:"draws"`
	Bye    bool `yaml:"bye"`
}

func (standing Standing) Tiebreaks() Tiebreaks {
	return Tiebreaks{
		Points: standing.Points,
		OMW:    standing.OMW,
		GW:     standing.GW,
		OGW:    standing.OGW,
	}
}

// Compare orders tiebreak vectors best first.
func (tb Tiebreaks) Compare(other Tiebreaks) int {
	if c := cmp.Compare(other.Points, tb.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(other.OMW, tb.OMW); c != 0 {
		return c
	}
	if c := cmp.Compare(other.GW, tb.GW); c != 0 {
		return c
	}
	return cmp.Compare(other.OGW, tb.OGW)
}

// Rank orders every registered participant by match points, OMW%, GW% and
// OGW%. Participants still tied after all four end up in a random order,
// drawn afresh from rng on every call.
func Rank(registry *Registry, calc *Calculator, rng *rand.Rand) []Standing {
	rows := make([]Standing, len(registry.participants))
	for i, p := range registry.participants {
		tb := calc.compute(p)
		wins, losses, draws := p.Record()

		rows[i] = Standing{
			ID:     p.ID,
			Name:   p.Name,
			Points: tb.Points,
			OMW:    tb.OMW,
			GW:     tb.GW,
			OGW:    tb.OGW,
			Wins:   wins,
			Losses: losses,
			Draws:  draws,
			Bye:    p.HasBye,
		}
	}

	// Shuffle first so the stable sort leaves true ties in random order.
	rng.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})

	slices.SortStableFunc(rows, func(a, b Standing) int {
		return a.Tiebreaks().Compare(b.Tiebreaks())
	})

	for i := range rows {
		rows[i].Rank = i + 1
	}

	return rows
}

// RequiredRounds is the number of rounds needed to separate n participants:
// ceil(log2 n), and at least 1.
func RequiredRounds(n int) int {
	if n <= 2 {
		return 1
	}

	return bits.Len(uint(n - 1))
}
