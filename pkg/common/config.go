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

package common

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/swiss/pkg/tournament"
)

const FilePermissions = 0755

// ConfigFile is the location of the user's configuration, relative to the
// XDG config directories.
var ConfigFile = filepath.Join("swiss", "config.yaml")

// LoadConfig reads the tournament configuration at path. Without a path the
// XDG config directories are searched for ConfigFile, and if there is none
// the defaults are used. Fields missing from the file keep their defaults.
func LoadConfig(path string) (tournament.Config, error) {
	config := tournament.DefaultConfig()

	if path == "" {
		found, err := xdg.SearchConfigFile(ConfigFile)
		if err != nil {
			logrus.Debug("No config file found, using defaults")
			return config, nil
		}

		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("load config: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("load config %s: %w", path, err)
	}

	logrus.WithField("file", path).Debug("Loaded config")
	return config, nil
}

// WriteConfig writes config as YAML, creating the file's directory. An
// empty path writes the user's ConfigFile.
func WriteConfig(path string, config tournament.Config) (string, error) {
	if path == "" {
		var err error
		if path, err = xdg.ConfigFile(ConfigFile); err != nil {
			return "", fmt.Errorf("write config: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), FilePermissions); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(config); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	_ = encoder.Close()

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	return path, nil
}
