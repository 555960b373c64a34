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
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SPIN is the spinner.CharSets index used for the ~working~ spinner.
const SPIN = 31

var working *spinner.Spinner

// StartSpinner starts the ~working~ spinner on w with the given suffix.
// The spinner only draws when w is a terminal.
func StartSpinner(w io.Writer, suffix string) {
	PauseSpinner()

	working = spinner.New(
		spinner.CharSets[SPIN], 100*time.Millisecond,
		spinner.WithWriter(w),
		spinner.WithSuffix(" "+suffix),
	)
	working.Start()
}

// PauseSpinner stops the ~working~ spinner if it is running.
func PauseSpinner() {
	if working != nil {
		working.Stop()
		working = nil
	}
}
