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

package guide

import (
	"fmt"
	"io"
	"strings"
)

const (
	rowFormat    = "%5d  %-5s   %-8s %-4s %7d   %-4s %-8s %7d"
	headerFormat = "%5s  %-5s   %-8s %-4s %7s   %-4s %-8s %7s"
)

// Report writes a table of the scoring of each round to w, followed by the
// totals under both readings of the guide.
func Report(w io.Writer, entries []Entry, totals Totals) error {
	header := fmt.Sprintf(headerFormat, "Line", "Round", "Move", "Res", "Score", "Goal", "Move", "Score")
	width := len(header)

	border := func(left, right string) string {
		return left + strings.Repeat("═", width+2) + right + "\n"
	}

	row := func(s string) string {
		return "║ " + s + " ║\n"
	}

	var b strings.Builder
	b.WriteString(border("╔", "╗"))
	b.WriteString(row(header))
	b.WriteString(border("╠", "╣"))

	for _, entry := range entries {
		b.WriteString(row(fmt.Sprintf(
			rowFormat,
			entry.Round.Line, entry.Round,
			entry.Move, entry.MoveOutcome, entry.MoveScore,
			entry.Outcome, entry.OutcomeMove, entry.OutcomeScore,
		)))
	}

	if len(entries) > 0 {
		b.WriteString(border("╠", "╣"))
	}

	b.WriteString(row(fmt.Sprintf(
		headerFormat,
		"", "Total",
		"", "", fmt.Sprint(totals.ByMove),
		"", "", fmt.Sprint(totals.ByOutcome),
	)))
	b.WriteString(border("╚", "╝"))

	_, err := io.WriteString(w, b.String())
	return err
}
