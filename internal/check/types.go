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

// State is the position of a workflow run in its lifecycle.
type State string

const (
	// StatePending: the run is about to report the pending status.
	StatePending State = "pending"
	// StateInspecting: commits are being fetched and scanned.
	StateInspecting State = "inspecting"
	// StateReporting: the terminal status is being reported.
	StateReporting State = "reporting"
	// StateDone: the run completed and the terminal status was accepted.
	StateDone State = "done"
	// StateFailed: a stage errored; the run stopped without retry.
	StateFailed State = "failed"
)

// PullRequestContext identifies the pull request a run operates on. The
// same HeadSHA is used for every status update within one run.
type PullRequestContext struct {
	Repo    string // owner/name qualifier
	HeadSHA string
	Number  int
}

// Violation records the banned terms found in one commit, in order of
// appearance in the message.
type Violation struct {
	Author   string
	Culprits []string
}

// Report maps offending commit shas to their violations, preserving the
// order in which offending commits were encountered. An empty report means
// no violations.
type Report struct {
	order   []string
	entries map[string]*Violation
}

func newReport() *Report {
	return &Report{entries: make(map[string]*Violation)}
}

func (r *Report) add(sha, author, culprit string) {
	entry, ok := r.entries[sha]
	if !ok {
		entry = &Violation{Author: author}
		r.entries[sha] = entry
		r.order = append(r.order, sha)
	}
	entry.Culprits = append(entry.Culprits, culprit)
}

// Empty reports whether no commit violated the banned-term list.
func (r *Report) Empty() bool {
	return r == nil || len(r.order) == 0
}

// Len returns the number of offending commits.
func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// SHAs returns the offending commit shas in commit order.
func (r *Report) SHAs() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

// Violation returns the entry for a sha, if any.
func (r *Report) Violation(sha string) (*Violation, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.entries[sha]
	return v, ok
}
