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
	"sync"

	"go.uber.org/zap"

	"github.com/buzzhook/buzzhook/internal/check"
)

// WorkflowRunner starts a check run for one pull request. Implemented by
// check.Workflow.
type WorkflowRunner interface {
	Run(ctx context.Context, pr check.PullRequestContext) check.State
}

// Dispatcher decides event eligibility and hands eligible events to the
// workflow, decoupled from the HTTP response cycle. The handler writes its
// response first and never waits on a run.
type Dispatcher struct {
	runner    WorkflowRunner
	eventType string
	actions   map[string]struct{}
	logger    *zap.Logger

	wg sync.WaitGroup
}

// NewDispatcher creates a dispatcher forwarding events of the given type
// whose action is in the allow-set.
func NewDispatcher(runner WorkflowRunner, eventType string, actions []string, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	allowed := make(map[string]struct{}, len(actions))
	for _, action := range actions {
		allowed[action] = struct{}{}
	}
	return &Dispatcher{
		runner:    runner,
		eventType: eventType,
		actions:   allowed,
		logger:    logger,
	}
}

// Eligible reports whether the event should trigger a check run.
func (d *Dispatcher) Eligible(event *Event) bool {
	if event == nil || event.Type != d.eventType {
		return false
	}
	_, ok := d.actions[event.Payload.Action]
	return ok
}

// Dispatch starts a workflow run for an eligible event on its own
// goroutine and returns immediately; ineligible events are dropped with no
// further action. The caller must have written its response already — once
// dispatched, the run is not cancellable and proceeds to completion, which
// is why it gets a fresh context rather than the request's.
func (d *Dispatcher) Dispatch(event *Event) bool {
	if !d.Eligible(event) {
		if event != nil {
			d.logger.Debug("dropping ineligible event",
				zap.String("event", event.Type),
				zap.String("action", event.Payload.Action),
				zap.String("delivery_id", event.DeliveryID),
			)
		}
		return false
	}

	pr := check.PullRequestContext{
		Repo:    event.Payload.PullRequest.Head.Repo.FullName,
		HeadSHA: event.Payload.PullRequest.Head.SHA,
		Number:  event.Payload.PullRequest.Number,
	}

	d.logger.Info("dispatching pull request check",
		zap.String("delivery_id", event.DeliveryID),
		zap.String("repo", pr.Repo),
		zap.Int("pull_number", pr.Number),
	)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.runner.Run(context.Background(), pr)
	}()
	return true
}

// Wait blocks until all dispatched runs have finished. Used on shutdown.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
