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

package util

import (
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

const SPIN = 31

var (
	spin     *spinner.Spinner
	spinOnce sync.Once
)

func getSpinner() *spinner.Spinner {
	spinOnce.Do(func() {
		spin = spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	})

	return spin
}

// StartSpinner starts the shared ~working~ spinner. It stays quiet when
// trace logging is enabled so it doesn't interleave with the logs.
func StartSpinner() {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		return
	}

	getSpinner().Start()
}

// SpinnerSuffix sets the text shown after the spinner.
func SpinnerSuffix(suffix string) {
	s := getSpinner()
	s.Lock()
	s.Suffix = " " + suffix
	s.Unlock()
}

// PauseSpinner stops the shared spinner; it can be started again.
func PauseSpinner() {
	getSpinner().Stop()
}
