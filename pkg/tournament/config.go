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
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

type Config struct {
	// Number of rounds to play. Zero plays RequiredRounds of the field.
	Rounds int `yaml:"rounds"`

	// Seed of the random source used for tie resolution and presentation
	// order. Zero draws a fresh seed.
	Seed int64 `yaml:"seed"`

	// Shuffle the registration order before the first round instead of
	// pairing it as given.
	Shuffle bool `yaml:"shuffle"`

	// Policy used when nobody left is a fresh opponent: "nearest" or
	// "lowest".
	Fallback string `yaml:"fallback"`

	Points Points `yaml:"points"`

	// Minimum match-win and game-win percentage.
	Floor float64 `yaml:"floor"`
}

// DefaultConfig uses the conventional Swiss constants: 3/1/0 match points,
// a bye worth a win and a one-third percentage floor.
func DefaultConfig() Config {
	return Config{
		Fallback: "nearest",
		Points: Points{
			Win:  3,
			Draw: 1,
			Loss: 0,
			Bye:  3,
		},
		Floor: 1.0 / 3.0,
	}
}

func (config Config) validate() error {
	switch {
	case config.Rounds < 0:
		return fmt.Errorf("%w: negative round count %d", ErrInvalidConfig, config.Rounds)
	case config.Points.Win <= 0:
		return fmt.Errorf("%w: win must be worth at least one point", ErrInvalidConfig)
	case config.Points.Draw < config.Points.Loss || config.Points.Win < config.Points.Draw:
		return fmt.Errorf("%w: points must satisfy win >= draw >= loss", ErrInvalidConfig)
	case config.Points.Loss < 0 || config.Points.Bye < 0:
		return fmt.Errorf("%w: negative points", ErrInvalidConfig)
	case config.Floor < 0 || config.Floor > 1:
		return fmt.Errorf("%w: floor %g outside [0, 1]", ErrInvalidConfig, config.Floor)
	}

	return nil
}

// newRand returns the random source for seed, drawing a seed from
// crypto/rand when it is zero.
func newRand(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err != nil {
			return nil, 0, fmt.Errorf("read random seed: %w", err)
		}

		seed = int64(binary.LittleEndian.Uint64(b[:]))
	}

	return rand.New(rand.NewSource(seed)), seed, nil
}
