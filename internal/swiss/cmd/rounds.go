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
	"strconv"

	"github.com/spf13/cobra"

	"laptudirm.com/x/swiss/pkg/tournament"
)

// swiss rounds
func Rounds() *cobra.Command {
	return &cobra.Command{
		Use:   "rounds players",
		Short: "Print the number of rounds needed for a field",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("rounds: invalid player count %q", args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), tournament.RequiredRounds(n))
			return nil
		},
	}
}
