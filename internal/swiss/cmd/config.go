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
	"errors"
	"io/fs"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/swiss/pkg/common"
	"laptudirm.com/x/swiss/pkg/tournament"
)

// swiss config
func Config() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize the tournament configuration",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`config prints the configuration a tournament would be run
			with: the defaults, overridden by the config file and then
			by any flags given.

			With --init the configuration is also written out, to the
			file named by --config or else to swiss/config.yaml in the
			user's config directory.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			initialize, _ := cmd.Flags().GetBool("init")

			config, err := common.LoadConfig(path)
			if initialize && errors.Is(err, fs.ErrNotExist) {
				// a new file is being created
				config, err = tournament.DefaultConfig(), nil
			}

			if err != nil {
				return err
			}

			applyFlags(cmd, &config)

			if initialize {
				if path, err = common.WriteConfig(path, config); err != nil {
					return err
				}

				logrus.WithField("file", path).Info("Wrote config")
			}

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(config); err != nil {
				return err
			}

			return encoder.Close()
		},
	}

	addTournamentFlags(cmd)
	cmd.Flags().Bool("init", false, "Write the configuration to the config file")

	return cmd
}
