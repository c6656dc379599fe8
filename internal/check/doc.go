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

// Package check implements the banned-buzzword commit check.
//
// A Workflow run is a sequential three-stage pipeline over one pull
// request:
//
//  1. Report a "pending" commit status for the head sha.
//  2. Fetch up to 100 commits and scan their messages with Detect.
//  3. Report "failure" with the composed sentence when violations were
//     found, otherwise "success".
//
// The stages are strictly ordered: the pending report completes (or fails)
// before commits are fetched, and the terminal report is always the last
// network call of a run. Every status update within a run targets the same
// head sha and context label. A stage failure halts the run; nothing is
// retried, and the outcome is logged exactly once at the end of the run.
//
// Detect and ComposeFailureMessage are pure functions and can be used
// without a Workflow.
package check
