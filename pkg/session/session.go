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

// Package session runs a tournament interactively, prompting an operator
// for the score of every pairing.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/swiss/pkg/tournament"
)

var errNotInteger = errors.New("could not parse score into integer")

var (
	heading = color.New(color.FgCyan, color.Bold)
	warning = color.New(color.FgRed)
	subtle  = color.New(color.FgYellow)
)

// Session reads scores from In and writes prompts and tables to Out.
// Rejected input is reported on Err.
type Session struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	scanner *bufio.Scanner
}

func New(in io.Reader, out, err io.Writer) *Session {
	return &Session{In: in, Out: out, Err: err}
}

// Play runs the tournament to the end, resuming the current round if it
// still has pairings waiting for a result. It returns io.ErrUnexpectedEOF if
// the input ends first.
func (s *Session) Play(tour *tournament.Tournament) error {
	for {
		pending := tour.Pending()
		if len(pending) == 0 {
			if tour.Finished() {
				return nil
			}

			pairings, err := tour.NextRound()
			if err != nil {
				return err
			}

			heading.Fprintf(s.Out, "\n\n=== ROUND %d/%d ===\n\n", tour.Round(), tour.Rounds())
			for _, pairing := range pairings {
				if pairing.Bye {
					subtle.Fprintf(s.Out, "BYE: %s\n", tour.Name(pairing.Home))
				}
			}

			pending = tour.Pending()
		}

		for _, pairing := range pending {
			if err := s.score(tour, pairing); err != nil {
				return err
			}
		}
	}
}

// score prompts until a valid result for the pairing is recorded.
func (s *Session) score(tour *tournament.Tournament, pairing tournament.Pairing) error {
	home, away := tour.Name(pairing.Home), tour.Name(pairing.Away)

	for {
		fmt.Fprintf(s.Out, "\nPAIRING:\n[1] %s\n[2] %s\n\n", home, away)

		homeScore, err := s.readScore(1, home)
		if errors.Is(err, errNotInteger) {
			warning.Fprintln(s.Err, err)
			continue
		} else if err != nil {
			return err
		}

		awayScore, err := s.readScore(2, away)
		if errors.Is(err, errNotInteger) {
			warning.Fprintln(s.Err, err)
			continue
		} else if err != nil {
			return err
		}

		err = tour.RecordResult(pairing.Table, homeScore, awayScore)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, tournament.ErrInvalidScore):
			warning.Fprintf(s.Err, "Error recording result: %v\n", err)
			logrus.WithField("table", pairing.Table).Trace("Rejected score")
		default:
			return err
		}
	}
}

func (s *Session) readScore(num int, name string) (int, error) {
	if s.scanner == nil {
		s.scanner = bufio.NewScanner(s.In)
	}

	fmt.Fprintf(s.Out, "[%d] %s > ", num, name)

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return 0, fmt.Errorf("read score: %w", err)
		}

		return 0, io.ErrUnexpectedEOF
	}

	score, err := strconv.Atoi(strings.TrimSpace(s.scanner.Text()))
	if err != nil {
		return 0, errNotInteger
	}

	return score, nil
}
