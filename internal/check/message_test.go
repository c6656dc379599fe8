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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeFailureMessage_EmptyReport(t *testing.T) {
	assert.Empty(t, ComposeFailureMessage(newReport()))
	assert.Empty(t, ComposeFailureMessage(nil))
}

func TestComposeFailureMessage_SingleOffender(t *testing.T) {
	report := newReport()
	report.add("abc1234def5678", "alice", "utilize")

	got := ComposeFailureMessage(report)

	assert.Equal(t, "alice went overboard with “utilize” in abc1234", got)
}

func TestComposeFailureMessage_TwoOfEach(t *testing.T) {
	report := newReport()
	report.add("abc1234def", "bob", "Synergy")
	report.add("fed4321abc", "alice", "leverage")

	got := ComposeFailureMessage(report)

	// authors sorted, terms lower-cased and sorted, shas in commit order
	assert.Equal(t, "alice and bob went overboard with “leverage” and “synergy” in abc1234 and fed4321", got)
}

func TestComposeFailureMessage_DeduplicatesTermsAndAuthors(t *testing.T) {
	report := newReport()
	report.add("c1abcdef0", "alice", "utilize")
	report.add("c1abcdef0", "alice", "UTILIZE")
	report.add("c2abcdef0", "alice", "Utilize")

	got := ComposeFailureMessage(report)

	assert.Equal(t, "alice went overboard with “utilize” in c1abcde and c2abcde", got)
}

func TestToSentence(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{name: "empty", items: nil, want: ""},
		{name: "one item", items: []string{"a"}, want: "a"},
		{name: "two items", items: []string{"a", "b"}, want: "a and b"},
		{name: "three items", items: []string{"a", "b", "c"}, want: "a, b and c"},
		{name: "overflow", items: []string{"a", "b", "c", "d"}, want: "4 authors including a, b and c"},
		{name: "large overflow", items: []string{"a", "b", "c", "d", "e", "f"}, want: "6 authors including a, b and c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toSentence(tt.items, "authors including"))
		})
	}
}

func TestComposeFailureMessage_AuthorOverflow(t *testing.T) {
	report := newReport()
	report.add("c1", "d", "utilize")
	report.add("c2", "b", "utilize")
	report.add("c3", "a", "utilize")
	report.add("c4", "c", "utilize")

	got := ComposeFailureMessage(report)

	assert.Equal(t, "4 authors including a, b and c went overboard with “utilize” in 4 commits including c1, c2 and c3", got)
}
