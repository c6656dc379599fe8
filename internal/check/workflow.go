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
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/buzzhook/buzzhook/internal/github"
)

const (
	pendingDescription = "Reviewing commit messages for banned wording…"
	successDescription = "I like your commit messages!"
)

// Workflow runs the banned-buzzword check for one pull request at a time.
// A run is not cancellable once dispatched and never retries a stage:
// retrying a status update after an ambiguous remote failure could publish
// duplicate or contradictory check states.
type Workflow struct {
	gh           github.Client
	logger       *zap.Logger
	contextLabel string
	pattern      *regexp.Regexp
}

// NewWorkflow creates a workflow reporting under the given status context
// label. A nil pattern falls back to DefaultPattern.
func NewWorkflow(gh github.Client, logger *zap.Logger, contextLabel string, pattern *regexp.Regexp) *Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}
	if pattern == nil {
		pattern = DefaultPattern
	}
	return &Workflow{
		gh:           gh,
		logger:       logger,
		contextLabel: contextLabel,
		pattern:      pattern,
	}
}

// Run executes the three-stage pipeline for one pull request and returns
// the terminal state. The outcome is logged exactly once, here, whether
// the run completed or failed.
func (w *Workflow) Run(ctx context.Context, pr PullRequestContext) State {
	runID := uuid.NewString()

	state, err := w.run(ctx, pr)

	fields := []zap.Field{
		zap.String("run_id", runID),
		zap.String("repo", pr.Repo),
		zap.Int("pull_number", pr.Number),
		zap.String("sha", pr.HeadSHA),
		zap.String("state", string(state)),
	}
	if err != nil {
		w.logger.Error("error while processing pull request", append(fields, zap.Error(err))...)
	} else {
		w.logger.Info("pull request successfully processed", fields...)
	}

	return state
}

// run steps the state machine: Pending → Inspecting → Reporting → Done.
// Any stage error moves straight to Failed.
func (w *Workflow) run(ctx context.Context, pr PullRequestContext) (State, error) {
	state := StatePending
	if err := w.reportStatus(ctx, pr, github.StatusStatePending, pendingDescription); err != nil {
		return StateFailed, fmt.Errorf("stage %s: %w", state, err)
	}

	state = StateInspecting
	commits, err := w.gh.ListPullRequestCommits(ctx, pr.Repo, pr.Number)
	if err != nil {
		return StateFailed, fmt.Errorf("stage %s: %w", state, err)
	}
	report := Detect(commits, w.pattern)

	state = StateReporting
	terminal := github.StatusStateSuccess
	description := successDescription
	if message := ComposeFailureMessage(report); message != "" {
		terminal = github.StatusStateFailure
		description = message
	}
	if err := w.reportStatus(ctx, pr, terminal, description); err != nil {
		return StateFailed, fmt.Errorf("stage %s: %w", state, err)
	}

	return StateDone, nil
}

func (w *Workflow) reportStatus(ctx context.Context, pr PullRequestContext, state github.StatusState, description string) error {
	return w.gh.CreateStatus(ctx, pr.Repo, pr.HeadSHA, &github.Status{
		State:       state,
		Context:     w.contextLabel,
		Description: description,
	})
}
