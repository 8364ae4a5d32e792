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
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Registry owns the participants of a tournament. Everything else refers to
// participants by ID and looks them up here.
type Registry struct {
	participants []*Participant
	byID         map[ID]*Participant
	byName       map[string]ID
}

func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[ID]*Participant),
		byName: make(map[string]ID),
	}
}

// Register adds a participant with the given display name. Names are
// compared after Unicode normalization and case folding, so "Alice" and
// "ALICE" are the same participant.
func (registry *Registry) Register(name string) (ID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.Nil, NameError{Name: name, Err: ErrEmptyName}
	}

	key := nameKey(name)
	if _, found := registry.byName[key]; found {
		return uuid.Nil, NameError{Name: name, Err: ErrDuplicateName}
	}

	p := &Participant{
		ID:   uuid.New(),
		Name: name,
		Seed: len(registry.participants),
	}

	registry.participants = append(registry.participants, p)
	registry.byID[p.ID] = p
	registry.byName[key] = p.ID
	return p.ID, nil
}

// Get returns a snapshot of the participant with the given ID.
func (registry *Registry) Get(id ID) (Participant, error) {
	p, err := registry.lookup(id)
	if err != nil {
		return Participant{}, err
	}

	return p.view(), nil
}

// Participants returns snapshots of every participant in registration order.
func (registry *Registry) Participants() []Participant {
	views := make([]Participant, len(registry.participants))
	for i, p := range registry.participants {
		views[i] = p.view()
	}

	return views
}

func (registry *Registry) Len() int {
	return len(registry.participants)
}

// ApplyResult appends a match record to the participant's history and adds
// its match points. The record is not validated.
func (registry *Registry) ApplyResult(id ID, record MatchRecord) error {
	p, err := registry.lookup(id)
	if err != nil {
		return err
	}

	p.Records = append(p.Records, record)
	p.Points += record.Points
	if record.Bye {
		p.HasBye = true
	}

	return nil
}

func (registry *Registry) lookup(id ID) (*Participant, error) {
	p, found := registry.byID[id]
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParticipant, id)
	}

	return p, nil
}

func nameKey(name string) string {
	// a Caser keeps state, so each call gets a fresh one
	return cases.Fold().String(norm.NFC.String(name))
}
