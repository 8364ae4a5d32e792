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

package cmd

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/roster"
	"laptudirm.com/x/swiss/pkg/session"
	"laptudirm.com/x/swiss/pkg/tournament"
)

// swiss run
func Run() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run players-file",
		Short: "Run a Swiss tournament, entering results as they come in",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`run pairs a Swiss tournament between the players listed
			in the given file, one name per line, and asks for the
			score of every pairing in turn.

			Scores are entered as the number of games each side won:
			2-0, 2-1, 1-1, 1-2 or 0-2. Anything else is rejected and
			the pairing asked for again.

			With --dir the argument is a directory instead, and every
			file in it is a player named by the file's name without
			its extension.

			The final standings are printed at the end, and with
			--output written to the given file as YAML.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := tournamentConfig(cmd)
			if err != nil {
				return err
			}

			var names []string
			if dir, _ := cmd.Flags().GetBool("dir"); dir {
				names, err = roster.ReadDir(args[0])
			} else {
				names, err = roster.ReadFile(args[0])
			}

			if err != nil {
				return err
			}

			tour, err := tournament.NewTournament(names, config)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"players": len(names),
				"rounds":  tour.Rounds(),
				"seed":    tour.Seed(),
			}).Info("Starting tournament")

			s := session.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err := s.Play(tour); err != nil {
				return err
			}

			standings := tour.Standings()
			s.PrintStandings(standings)

			output, _ := cmd.Flags().GetString("output")
			if output == "" {
				return nil
			}

			return writeReport(output, session.NewReport(tour, standings))
		},
	}

	addTournamentFlags(cmd)
	cmd.Flags().BoolP("dir", "d", false, "Read the players from a directory's file names")
	cmd.Flags().StringP("output", "o", "", "Write the final standings to this YAML file")

	return cmd
}

func writeReport(path string, report session.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write standings: %w", err)
	}

	if err := session.WriteYAML(file, report); err != nil {
		_ = file.Close()
		return err
	}

	logrus.WithField("file", path).Info("Wrote standings")
	return file.Close()
}
