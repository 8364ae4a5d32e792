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
	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/common"
	"laptudirm.com/x/swiss/pkg/tournament"
)

// addTournamentFlags registers the flags which override the config file.
func addTournamentFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Read the tournament config from this file")
	cmd.Flags().Int64P("seed", "s", 0, "Seed of the random source (0 picks one)")
	cmd.Flags().IntP("rounds", "r", 0, "Number of rounds (0 plays the required rounds)")
	cmd.Flags().String("fallback", "", "Forced repeat policy: nearest or lowest")
	cmd.Flags().Bool("shuffle", false, "Shuffle the seeding before the first round")
}

// tournamentConfig loads the config file and applies any flags given.
func tournamentConfig(cmd *cobra.Command) (tournament.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	config, err := common.LoadConfig(path)
	if err != nil {
		return config, err
	}

	applyFlags(cmd, &config)
	return config, nil
}

func applyFlags(cmd *cobra.Command, config *tournament.Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		config.Seed, _ = flags.GetInt64("seed")
	}

	if flags.Changed("rounds") {
		config.Rounds, _ = flags.GetInt("rounds")
	}

	if flags.Changed("fallback") {
		config.Fallback, _ = flags.GetString("fallback")
	}

	if flags.Changed("shuffle") {
		config.Shuffle, _ = flags.GetBool("shuffle")
	}
}
