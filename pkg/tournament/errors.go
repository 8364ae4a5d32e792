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
	"errors"
	"fmt"
)

var (
	// ErrInvalidScore is returned when a reported game score is not one of
	// 2-0, 2-1, 1-1, 1-2 or 0-2. Nothing is recorded, so the same pairing
	// can simply be reported again.
	ErrInvalidScore = errors.New("tournament: invalid score")

	// ErrUnknownParticipant is returned when an ID is not registered.
	ErrUnknownParticipant = errors.New("tournament: unknown participant")

	// ErrDuplicateName is returned when a name is registered twice.
	ErrDuplicateName = errors.New("tournament: duplicate name")

	// ErrEmptyName is returned when a blank name is registered.
	ErrEmptyName = errors.New("tournament: empty name")

	// ErrInsufficientParticipants is returned when fewer than two
	// participants are available to pair.
	ErrInsufficientParticipants = errors.New("tournament: at least two participants are required")

	ErrUnknownPairing     = errors.New("tournament: unknown pairing")
	ErrAlreadyRecorded    = errors.New("tournament: result already recorded")
	ErrByePairing         = errors.New("tournament: bye pairings take no result")
	ErrRoundInProgress    = errors.New("tournament: current round has unrecorded results")
	ErrTournamentComplete = errors.New("tournament: all planned rounds have been played")
	ErrUnknownFallback    = errors.New("tournament: unknown fallback policy")
	ErrInvalidConfig      = errors.New("tournament: invalid config")
)

// ScoreError is returned for a game score outside the accepted set.
type ScoreError struct {
	Home, Away int
}

func (e ScoreError) Error() string {
	return fmt.Sprintf("tournament: invalid score %d-%d (want one of 2-0, 2-1, 1-1, 1-2, 0-2)", e.Home, e.Away)
}

func (e ScoreError) Unwrap() error {
	return ErrInvalidScore
}

// NameError is returned when a participant name can't be registered.
type NameError struct {
	Name string
	Err  error
}

func (e NameError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Name)
}

func (e NameError) Unwrap() error {
	return e.Err
}
