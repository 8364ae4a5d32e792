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
	"bytes"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Pairing is a single table of a round. A bye pairing has no Away side and
// is created with its result already in place.
type Pairing struct {
	ID    ID
	Round int

	// Table is the 1-based position the pairing is presented at.
	Table int

	Home, Away ID
	Bye        bool

	Result *Score
}

// Recorded reports whether the pairing's result is in.
func (pairing Pairing) Recorded() bool {
	return pairing.Result != nil
}

// History is the set of pairings realized so far. Pairs are unordered.
type History struct {
	met map[[2]ID]int
}

func NewHistory() *History {
	return &History{met: make(map[[2]ID]int)}
}

func historyKey(a, b ID) [2]ID {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}

	return [2]ID{a, b}
}

// Add records that a and b have been paired.
func (history *History) Add(a, b ID) {
	history.met[historyKey(a, b)]++
}

// Met reports whether a and b have been paired before.
func (history *History) Met(a, b ID) bool {
	return history.met[historyKey(a, b)] > 0
}

// Count returns how many times a and b have been paired.
func (history *History) Count(a, b ID) int {
	return history.met[historyKey(a, b)]
}

// Len returns the number of distinct pairs that have met.
func (history *History) Len() int {
	return len(history.met)
}

// Plan is the outcome of pairing one round, before presentation order is
// applied. Bye is uuid.Nil when every participant is paired.
type Plan struct {
	Pairs [][2]ID
	Bye   ID

	// Repeats counts the pairs that were formed by the fallback policy.
	Repeats int
}

// searchBudget bounds the number of partial pairings tried while looking for
// a round without repeats.
const searchBudget = 1 << 14

// Pair pairs the given ranking, best first. With an odd count the
// lowest-ranked participant without a bye sits out. The rest are paired
// top-down, each taking the best-ranked unpaired participant it hasn't met,
// backtracking whenever a choice leaves the others unable to pair without a
// repeat. If the bye can't be given without forcing a repeat, the next
// lowest-ranked participant without a bye sits out instead. Only when no
// round without repeats exists does the fallback choose. Every pair formed
// is added to history.
func Pair(ranking []ID, history *History, byes map[ID]bool, fallback Fallback) (Plan, error) {
	var plan Plan
	if len(ranking) < 2 {
		return plan, ErrInsufficientParticipants
	}

	if fallback == nil {
		fallback = Nearest
	}

	pool := slices.Clone(ranking)
	search := &matcher{history: history, budget: searchBudget}

	// bye choices in preference order, -1 meaning nobody sits out
	choices := []int{-1}
	if len(pool)%2 == 1 {
		choices = byeOrder(pool, byes)
	}

	for _, bye := range choices {
		rest := without(pool, bye)
		if pairs, ok := search.fresh(rest); ok {
			plan.Pairs = pairs
			if bye >= 0 {
				plan.Bye = pool[bye]
			}

			addPairs(history, plan.Pairs)
			return plan, nil
		}
	}

	if search.budget <= 0 {
		logrus.WithField("participants", len(pool)).Debug("Gave up searching for a round without repeats")
	}

	rest := without(pool, choices[0])
	if choices[0] >= 0 {
		plan.Bye = pool[choices[0]]
	}

	var err error
	plan.Pairs, plan.Repeats, err = greedy(rest, history, fallback)
	if err != nil {
		return plan, err
	}

	addPairs(history, plan.Pairs)
	return plan, nil
}

// byeOrder lists the participants who may sit out, lowest-ranked first:
// those without a bye, or everybody if all have had one.
func byeOrder(pool []ID, byes map[ID]bool) []int {
	var order []int
	for i := len(pool) - 1; i >= 0; i-- {
		if !byes[pool[i]] {
			order = append(order, i)
		}
	}

	if len(order) == 0 {
		for i := len(pool) - 1; i >= 0; i-- {
			order = append(order, i)
		}
	}

	return order
}

func without(pool []ID, i int) []ID {
	if i < 0 {
		return pool
	}

	return slices.Delete(slices.Clone(pool), i, i+1)
}

func addPairs(history *History, pairs [][2]ID) {
	for _, pair := range pairs {
		history.Add(pair[0], pair[1])
	}
}

// matcher searches for a pairing of a pool in which nobody meets an
// opponent twice.
type matcher struct {
	history *History
	budget  int

	pool   []ID
	paired []bool
	pairs  [][2]ID
}

// fresh returns the top-down pairing of pool without repeats, preferring
// the nearest-ranked opponent at every step, if one exists.
func (m *matcher) fresh(pool []ID) ([][2]ID, bool) {
	m.pool = pool
	m.paired = make([]bool, len(pool))
	m.pairs = m.pairs[:0]

	if !m.match() {
		return nil, false
	}

	return slices.Clone(m.pairs), true
}

func (m *matcher) match() bool {
	i := slices.Index(m.paired, false)
	if i < 0 {
		return true
	}

	if m.budget <= 0 {
		return false
	}
	m.budget--

	m.paired[i] = true
	for j := i + 1; j < len(m.pool); j++ {
		if m.paired[j] || m.history.Met(m.pool[i], m.pool[j]) {
			continue
		}

		m.paired[j] = true
		m.pairs = append(m.pairs, [2]ID{m.pool[i], m.pool[j]})

		if m.open() && m.match() {
			return true
		}

		m.pairs = m.pairs[:len(m.pairs)-1]
		m.paired[j] = false
	}
	m.paired[i] = false

	return false
}

// open reports whether every unpaired participant still has somebody new
// left to play.
func (m *matcher) open() bool {
	for i := range m.pool {
		if m.paired[i] {
			continue
		}

		found := false
		for j := range m.pool {
			if j != i && !m.paired[j] && !m.history.Met(m.pool[i], m.pool[j]) {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

// greedy pairs pool top-down, letting the fallback choose whenever nobody
// new is left. It is only used once no pairing without repeats exists.
func greedy(pool []ID, history *History, fallback Fallback) ([][2]ID, int, error) {
	var pairs [][2]ID
	repeats := 0

	paired := make([]bool, len(pool))
	for i, home := range pool {
		if paired[i] {
			continue
		}
		paired[i] = true

		var candidates []int
		away := -1
		for j := i + 1; j < len(pool); j++ {
			if paired[j] {
				continue
			}

			candidates = append(candidates, j)
			if away < 0 && !history.Met(home, pool[j]) {
				away = j
			}
		}

		if len(candidates) == 0 {
			return nil, 0, fmt.Errorf("pair: no opponent left for %s", home)
		}

		if away < 0 {
			away = forcedRepeat(pool, candidates, fallback)
			repeats++

			logrus.WithFields(logrus.Fields{
				"home": home,
				"away": pool[away],
			}).Debug("Forced repeat pairing")
		}

		paired[away] = true
		pairs = append(pairs, [2]ID{home, pool[away]})
	}

	return pairs, repeats, nil
}

func forcedRepeat(pool []ID, candidates []int, fallback Fallback) int {
	ids := make([]ID, len(candidates))
	for i, c := range candidates {
		ids[i] = pool[c]
	}

	choice := fallback(ids)
	if choice < 0 || choice >= len(candidates) {
		choice = 0
	}

	return candidates[choice]
}

// byePairing builds the table shown for the participant sitting out.
func byePairing(round, table int, id ID) Pairing {
	return Pairing{
		ID:     uuid.New(),
		Round:  round,
		Table:  table,
		Home:   id,
		Bye:    true,
		Result: &Score{Home: 2, Away: 0},
	}
}
