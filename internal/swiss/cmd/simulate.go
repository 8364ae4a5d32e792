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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/swiss/internal/util"
	"laptudirm.com/x/swiss/pkg/simulate"
)

// swiss simulate
func Simulate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play many tournaments with random results",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`simulate plays independent tournaments between generated
			players, with a random valid score for every pairing, and
			checks the pairings of every round as it goes.

			It reports how many pairings were forced repeats, and the
			seeds of the tournaments which needed one so they can be
			replayed with --seed.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := tournamentConfig(cmd)
			if err != nil {
				return err
			}

			players, _ := cmd.Flags().GetInt("players")
			runs, _ := cmd.Flags().GetInt("runs")
			jobs, _ := cmd.Flags().GetInt("jobs")

			// the base seed is per run, not per tournament
			seed := config.Seed
			config.Seed = 0

			util.StartSpinner()
			report, err := simulate.Run(cmd.Context(), simulate.Options{
				Players:     players,
				Runs:        runs,
				Concurrency: jobs,
				Seed:        seed,
				Config:      config,
				Progress: func(done int) {
					util.SpinnerSuffix(fmt.Sprintf("%d/%d tournaments", done, runs))
				},
			})
			util.PauseSpinner()

			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"runs":    report.Runs,
				"repeats": report.Repeats,
			}).Info("Simulation finished")

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(report); err != nil {
				return err
			}

			return encoder.Close()
		},
	}

	addTournamentFlags(cmd)
	cmd.Flags().IntP("players", "p", 8, "Number of players in each tournament")
	cmd.Flags().IntP("runs", "n", 100, "Number of tournaments to play")
	cmd.Flags().IntP("jobs", "j", 0, "Tournaments played at once (0 uses every CPU)")

	return cmd
}
