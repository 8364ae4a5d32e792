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
	"slices"

	"github.com/google/uuid"
)

// ID identifies a participant or a pairing.
type ID = uuid.UUID

// MatchRecord is a single round from one participant's point of view. A bye
// has no opponent (uuid.Nil) and counts as two games won.
type MatchRecord struct {
	Round    int
	Opponent ID
	Bye      bool

	// Games won, lost and drawn by the participant in the match.
	Won, Lost, Drawn int

	Outcome Outcome
	Points  int
}

// Games returns the number of games played in the match.
func (record MatchRecord) Games() int {
	return record.Won + record.Lost + record.Drawn
}

// GamePoints scores 3 per game won and 1 per game drawn.
func (record MatchRecord) GamePoints() int {
	return 3*record.Won + record.Drawn
}

// Participant is a registered competitor and everything it has played.
type Participant struct {
	ID   ID
	Name string

	// Seed is the registration order, starting at 0.
	Seed int

	Records []MatchRecord
	HasBye  bool

	// Points is the running match point total.
	Points int
}

// Opponents returns the opponents faced, one entry per match, byes excluded.
func (p *Participant) Opponents() []ID {
	opponents := make([]ID, 0, len(p.Records))
	for _, record := range p.Records {
		if !record.Bye {
			opponents = append(opponents, record.Opponent)
		}
	}

	return opponents
}

// Record returns the match wins, losses and draws, a bye counting as a win.
func (p *Participant) Record() (wins, losses, draws int) {
	for _, record := range p.Records {
		switch record.Outcome {
		case Win:
			wins++
		case Loss:
			losses++
		case Draw:
			draws++
		}
	}

	return wins, losses, draws
}

func (p *Participant) view() Participant {
	view := *p
	view.Records = slices.Clone(p.Records)
	return view
}
