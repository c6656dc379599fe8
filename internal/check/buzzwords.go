// Copyright 2026 The Buzzhook Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package check

import (
	"regexp"

	"github.com/buzzhook/buzzhook/internal/github"
)

// DefaultPattern matches word variants of the banned-term list,
// case-insensitively.
var DefaultPattern = regexp.MustCompile(`(?i)utili[sz]e|synerg(?:y|i[sz]e)|growth hack(?:er|ing)?|leverag(?:e|ing)`)

// Detect scans commit messages for banned terms and builds the report.
// Every match in a message contributes its matched substring, in order of
// appearance, to that commit's culprits; clean commits contribute no
// entry. A nil pattern falls back to DefaultPattern.
func Detect(commits []*github.Commit, pattern *regexp.Regexp) *Report {
	if pattern == nil {
		pattern = DefaultPattern
	}

	report := newReport()
	for _, commit := range commits {
		if commit == nil {
			continue
		}
		for _, culprit := range pattern.FindAllString(commit.Message, -1) {
			report.add(commit.SHA, commit.Author, culprit)
		}
	}
	return report
}
