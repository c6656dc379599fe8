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

// Package github bridges Buzzhook to the GitHub REST API.
//
// It exposes a small Client interface over go-github so the check workflow
// and the CLI never see API wire types:
//   - List the commits of a pull request (first page, up to 100)
//   - Create tri-state commit statuses (pending, success, failure)
//   - Register a pull_request webhook carrying the shared secret
//   - List the authenticated user's repositories
//   - Verify credentials via the rate-limit endpoint
//
// Remote responses are converted into explicit domain structs at this
// boundary; missing optional fields (for example a commit author with no
// linked account) degrade to zero values instead of errors.
//
// Calls are single attempt. The check workflow treats any failure as
// terminal for the run, and retrying a status update after an ambiguous
// remote failure could publish duplicate or contradictory check states.
//
// Authentication uses a personal access token with repo scope. An empty
// token produces an unauthenticated client, which is enough for tests but
// fails CheckCredentials.
package github
