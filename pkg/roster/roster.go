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

// Package roster reads the list of participants for a tournament.
package roster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/swiss/internal/util"
)

// Read reads one name per line. Names are trimmed and blank lines skipped;
// anything else, duplicates included, is left for registration to reject.
func Read(r io.Reader) ([]string, error) {
	var names []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}

		names = append(names, name)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	return names, nil
}

// ReadFile reads a roster file, see Read.
func ReadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	defer file.Close()

	names, err := Read(file)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"file":  path,
		"names": len(names),
	}).Debug("Read roster")

	return names, nil
}

// ReadDir uses the entries of a directory as the roster: every regular file
// is a participant, named by its file stem. Hidden files are ignored and the
// names come back in natural order.
func ReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	slices.SortFunc(names, util.NaturalCompare)

	logrus.WithFields(logrus.Fields{
		"directory": dir,
		"names":     len(names),
	}).Debug("Read roster")

	return names, nil
}
