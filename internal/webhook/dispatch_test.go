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

package webhook

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buzzhook/buzzhook/internal/check"
)

// recordingRunner captures runs; release, when set, gates completion.
type recordingRunner struct {
	runs    chan check.PullRequestContext
	release chan struct{}
}

func newRecordingRunner() *recordingRunner {
	return &recordingRunner{runs: make(chan check.PullRequestContext, 8)}
}

func (r *recordingRunner) Run(_ context.Context, pr check.PullRequestContext) check.State {
	r.runs <- pr
	if r.release != nil {
		<-r.release
	}
	return check.StateDone
}

func prEvent(action string) *Event {
	return &Event{
		Type:       "pull_request",
		DeliveryID: "delivery-1",
		Payload: EventPayload{
			Action: action,
			Number: 7,
			PullRequest: PullRequest{
				Number: 7,
				Head: Ref{
					SHA:  "abc1234def",
					Repo: Repository{FullName: "octocat/demo"},
				},
			},
		},
	}
}

func TestEligible(t *testing.T) {
	d := NewDispatcher(newRecordingRunner(), "pull_request", []string{"opened", "synchronize"}, nil)

	tests := []struct {
		name  string
		event *Event
		want  bool
	}{
		{name: "opened PR", event: prEvent("opened"), want: true},
		{name: "synchronized PR", event: prEvent("synchronize"), want: true},
		{name: "closed PR", event: prEvent("closed"), want: false},
		{name: "reopened PR", event: prEvent("reopened"), want: false},
		{name: "other event type", event: &Event{Type: "issues", Payload: EventPayload{Action: "opened"}}, want: false},
		{name: "push event", event: &Event{Type: "push"}, want: false},
		{name: "nil event", event: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Eligible(tt.event))
		})
	}
}

func TestDispatch_EligibleEventStartsRun(t *testing.T) {
	runner := newRecordingRunner()
	d := NewDispatcher(runner, "pull_request", []string{"opened", "synchronize"}, nil)

	require.True(t, d.Dispatch(prEvent("opened")))

	select {
	case pr := <-runner.runs:
		assert.Equal(t, check.PullRequestContext{Repo: "octocat/demo", HeadSHA: "abc1234def", Number: 7}, pr)
	case <-time.After(2 * time.Second):
		t.Fatal("workflow run was never started")
	}
	d.Wait()
}

func TestDispatch_IneligibleEventIsDropped(t *testing.T) {
	runner := newRecordingRunner()
	d := NewDispatcher(runner, "pull_request", []string{"opened", "synchronize"}, nil)

	assert.False(t, d.Dispatch(prEvent("closed")))
	d.Wait()

	select {
	case pr := <-runner.runs:
		t.Fatalf("unexpected run for %+v", pr)
	default:
	}
}

func TestDispatch_DoesNotBlockTheCaller(t *testing.T) {
	runner := newRecordingRunner()
	runner.release = make(chan struct{})
	d := NewDispatcher(runner, "pull_request", []string{"opened"}, nil)

	done := make(chan struct{})
	go func() {
		d.Dispatch(prEvent("opened"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked on the workflow run")
	}

	close(runner.release)
	d.Wait()
}
