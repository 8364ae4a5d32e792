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

package simulate

import (
	"fmt"
	"math/bits"

	"laptudirm.com/x/swiss/pkg/tournament"
)

// maxSearch is the largest field whose forced repeats are verified by
// searching every pairing. Up to this size the engine's own search is
// exhaustive too; beyond it the engine may give up and repeat.
const maxSearch = 12

// checker tracks a tournament's history independently of the engine.
type checker struct {
	ids  []tournament.ID
	met  map[[2]tournament.ID]bool
	byes map[tournament.ID]bool
}

func newChecker(ids []tournament.ID) *checker {
	return &checker{
		ids:  ids,
		met:  make(map[[2]tournament.ID]bool),
		byes: make(map[tournament.ID]bool),
	}
}

func (c *checker) hasMet(a, b tournament.ID) bool {
	return c.met[[2]tournament.ID{a, b}] || c.met[[2]tournament.ID{b, a}]
}

// check verifies one round: everybody is paired exactly once, there are
// players/2 games and a bye only for an odd field, nobody gets a second bye
// while others haven't had one, and repeats only happen when forced and no
// round without them was possible.
func (c *checker) check(round int, pairings []tournament.Pairing, forced int) error {
	players := len(c.ids)

	if forced > 0 && players <= maxSearch && c.freshRound() {
		return fmt.Errorf("%w: round %d forced %d repeats, a round without any existed", ErrInvariant, round, forced)
	}

	seen := make(map[tournament.ID]bool, players)
	games, byes, repeats := 0, 0, 0

	mark := func(id tournament.ID) error {
		if seen[id] {
			return fmt.Errorf("%w: round %d pairs %s twice", ErrInvariant, round, id)
		}
		seen[id] = true
		return nil
	}

	for _, pairing := range pairings {
		if err := mark(pairing.Home); err != nil {
			return err
		}

		if pairing.Bye {
			byes++
			if c.byes[pairing.Home] && len(c.byes) < players {
				return fmt.Errorf("%w: round %d gives %s a second bye", ErrInvariant, round, pairing.Home)
			}
			c.byes[pairing.Home] = true
			continue
		}

		if err := mark(pairing.Away); err != nil {
			return err
		}

		games++
		if c.hasMet(pairing.Home, pairing.Away) {
			repeats++
		}
		c.met[[2]tournament.ID{pairing.Home, pairing.Away}] = true
	}

	switch {
	case len(seen) != players:
		return fmt.Errorf("%w: round %d pairs %d of %d players", ErrInvariant, round, len(seen), players)
	case games != players/2:
		return fmt.Errorf("%w: round %d has %d games", ErrInvariant, round, games)
	case byes != players%2:
		return fmt.Errorf("%w: round %d has %d byes", ErrInvariant, round, byes)
	case repeats != forced:
		return fmt.Errorf("%w: round %d repeats %d pairings, %d reported", ErrInvariant, round, repeats, forced)
	}

	return nil
}

// freshRound reports whether the next round could have been paired with
// nobody meeting twice, giving the bye to somebody allowed to take it.
func (c *checker) freshRound() bool {
	n := len(c.ids)
	full := uint32(1)<<n - 1
	memo := make(map[uint32]bool)

	if n%2 == 0 {
		return c.perfect(full, memo)
	}

	everyone := len(c.byes) >= n
	for i, id := range c.ids {
		if c.byes[id] && !everyone {
			continue
		}

		if c.perfect(full&^(1<<i), memo) {
			return true
		}
	}

	return false
}

// perfect reports whether the players in mask can all be paired fresh.
func (c *checker) perfect(mask uint32, memo map[uint32]bool) bool {
	if mask == 0 {
		return true
	}

	if ok, found := memo[mask]; found {
		return ok
	}

	i := bits.TrailingZeros32(mask)
	rest := mask &^ (1 << i)

	ok := false
	for m := rest; m != 0 && !ok; m &= m - 1 {
		j := bits.TrailingZeros32(m)
		if !c.hasMet(c.ids[i], c.ids[j]) {
			ok = c.perfect(rest&^(1<<j), memo)
		}
	}

	memo[mask] = ok
	return ok
}
