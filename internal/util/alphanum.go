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
	"cmp"
	"regexp"
	"strconv"
)

var chunkRegexp = regexp.MustCompile(`(\d+|\D+)`)

func chunks(s string) []string {
	return chunkRegexp.FindAllString(s, -1)
}

// NaturalCompare compares two strings in natural order, so that "player 2"
// sorts before "player 10". Digit runs compare by value, everything else
// byte-wise.
func NaturalCompare(a, b string) int {
	ca, cb := chunks(a), chunks(b)

	for i := 0; i < len(ca) && i < len(cb); i++ {
		na, errA := strconv.Atoi(ca[i])
		nb, errB := strconv.Atoi(cb[i])

		var c int
		if errA == nil && errB == nil {
			c = cmp.Compare(na, nb)
		} else {
			c = cmp.Compare(ca[i], cb[i])
		}

		if c != 0 {
			return c
		}
	}

	// a shared prefix sorts before the longer string
	if c := cmp.Compare(len(ca), len(cb)); c != 0 {
		return c
	}

	return cmp.Compare(a, b)
}
