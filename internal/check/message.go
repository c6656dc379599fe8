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
	"fmt"
	"sort"
	"strings"
)

// sentenceThreshold is the number of items shown before a set collapses
// into a counted summary.
const sentenceThreshold = 3

// shaDisplayLen is the abbreviated sha length used in messages.
const shaDisplayLen = 7

// ComposeFailureMessage renders a report as a single sentence, or ""
// when the report is empty. Shas keep commit order and are abbreviated;
// authors are sorted; terms are lower-cased, sorted and quoted.
func ComposeFailureMessage(report *Report) string {
	if report.Empty() {
		return ""
	}

	var abbrevs, authors, terms []string
	seenAuthors := make(map[string]bool)
	seenTerms := make(map[string]bool)

	for _, sha := range report.SHAs() {
		if len(sha) > shaDisplayLen {
			sha = sha[:shaDisplayLen]
		}
		abbrevs = append(abbrevs, sha)
	}

	for _, sha := range report.SHAs() {
		violation, _ := report.Violation(sha)
		if !seenAuthors[violation.Author] {
			seenAuthors[violation.Author] = true
			authors = append(authors, violation.Author)
		}
		for _, culprit := range violation.Culprits {
			term := strings.ToLower(culprit)
			if !seenTerms[term] {
				seenTerms[term] = true
				terms = append(terms, term)
			}
		}
	}

	sort.Strings(authors)
	sort.Strings(terms)
	for i, term := range terms {
		terms[i] = "“" + term + "”"
	}

	who := toSentence(authors, "authors including")
	what := toSentence(terms, "terms such as")
	where := toSentence(abbrevs, "commits including")

	return who + " went overboard with " + what + " in " + where
}

// toSentence joins a list with commas, the last two items with "and". A
// list longer than the threshold is cut down to its first threshold items
// and prefixed with the total count and an overflow label.
func toSentence(items []string, overflowLabel string) string {
	head := items
	if len(head) > sentenceThreshold {
		head = head[:sentenceThreshold]
	}

	var joined string
	switch len(head) {
	case 0:
		return ""
	case 1:
		joined = head[0]
	default:
		parts := append([]string(nil), head[:len(head)-2]...)
		parts = append(parts, head[len(head)-2]+" and "+head[len(head)-1])
		joined = strings.Join(parts, ", ")
	}

	if len(items) > sentenceThreshold {
		return fmt.Sprintf("%d %s %s", len(items), overflowLabel, joined)
	}
	return joined
}
