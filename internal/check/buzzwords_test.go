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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buzzhook/buzzhook/internal/github"
)

func TestDetect_RecordsMatchesInAppearanceOrder(t *testing.T) {
	commits := []*github.Commit{
		{SHA: "abc1234", Author: "alice", Message: "We should utilize synergy here"},
	}

	report := Detect(commits, nil)

	require.Equal(t, 1, report.Len())
	violation, ok := report.Violation("abc1234")
	require.True(t, ok)
	assert.Equal(t, "alice", violation.Author)
	assert.Equal(t, []string{"utilize", "synergy"}, violation.Culprits)
}

func TestDetect_CleanCommitContributesNoEntry(t *testing.T) {
	commits := []*github.Commit{
		{SHA: "abc1234", Author: "alice", Message: "fix off-by-one in parser"},
	}

	report := Detect(commits, nil)

	assert.True(t, report.Empty())
	_, ok := report.Violation("abc1234")
	assert.False(t, ok)
}

func TestDetect_CaseInsensitiveVariants(t *testing.T) {
	tests := []struct {
		message string
		want    []string
	}{
		{"Utilise the new API", []string{"Utilise"}},
		{"synergise ALL the things", []string{"synergise"}},
		{"hire a growth hacker", []string{"growth hacker"}},
		{"Leveraging our growth hacking mindset", []string{"Leveraging", "growth hacking"}},
		{"SYNERGY!", []string{"SYNERGY"}},
	}

	for _, tt := range tests {
		report := Detect([]*github.Commit{{SHA: "feed123", Author: "bob", Message: tt.message}}, nil)
		violation, ok := report.Violation("feed123")
		require.True(t, ok, "message %q", tt.message)
		assert.Equal(t, tt.want, violation.Culprits, "message %q", tt.message)
	}
}

func TestDetect_MultipleCommitsKeepCommitOrder(t *testing.T) {
	commits := []*github.Commit{
		{SHA: "c1", Author: "alice", Message: "leverage the cache"},
		{SHA: "c2", Author: "bob", Message: "nothing to see"},
		{SHA: "c3", Author: "carol", Message: "more synergy"},
	}

	report := Detect(commits, nil)

	assert.Equal(t, []string{"c1", "c3"}, report.SHAs())
}

func TestDetect_CustomPattern(t *testing.T) {
	pattern := regexp.MustCompile(`(?i)paradigm shift`)
	commits := []*github.Commit{
		{SHA: "c1", Author: "alice", Message: "a true Paradigm Shift, no synergy"},
	}

	report := Detect(commits, pattern)

	violation, ok := report.Violation("c1")
	require.True(t, ok)
	assert.Equal(t, []string{"Paradigm Shift"}, violation.Culprits)
}

func TestDetect_NoCommits(t *testing.T) {
	assert.True(t, Detect(nil, nil).Empty())
}

func TestDetect_IsDeterministic(t *testing.T) {
	commits := []*github.Commit{
		{SHA: "c1", Author: "alice", Message: "utilize leverage synergy"},
	}

	first := Detect(commits, nil)
	second := Detect(commits, nil)

	v1, _ := first.Violation("c1")
	v2, _ := second.Violation("c1")
	assert.Equal(t, v1, v2)
	assert.Equal(t, first.SHAs(), second.SHAs())
}
