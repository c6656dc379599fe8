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

package github

import "context"

// Client defines the contract for interacting with the GitHub API.
type Client interface {
	// ListPullRequestCommits returns up to 100 commits of a pull request,
	// in API return order. Pagination beyond the first page is out of scope.
	ListPullRequestCommits(ctx context.Context, repo string, number int) ([]*Commit, error)
	// CreateStatus attaches a commit status to the given sha.
	CreateStatus(ctx context.Context, repo, sha string, status *Status) error
	// CreateHook registers a pull_request webhook on the repository. The
	// secret must be the same one the verifier uses.
	CreateHook(ctx context.Context, repo, hookURL, secret string) (*Hook, error)
	// ListRepositories returns up to 100 repositories visible to the
	// authenticated user.
	ListRepositories(ctx context.Context) ([]*Repository, error)
	// CheckCredentials probes the rate-limit endpoint to confirm the token
	// authenticates.
	CheckCredentials(ctx context.Context) error
}

// Commit is a single commit of a pull request, validated at the API
// boundary. Author is the GitHub login and may be empty when the commit
// author has no linked account.
type Commit struct {
	SHA     string
	Author  string
	Message string
}

// Status represents a commit status to be set on GitHub.
type Status struct {
	State       StatusState
	Context     string // unique name for this status check
	Description string // truncated to GitHub's 140-character limit
	TargetURL   string
}

// StatusState represents the state of a commit status.
type StatusState string

const (
	// StatusStatePending indicates the check is still running.
	StatusStatePending StatusState = "pending"
	// StatusStateSuccess indicates the check passed.
	StatusStateSuccess StatusState = "success"
	// StatusStateFailure indicates the check failed.
	StatusStateFailure StatusState = "failure"
)

// Repository is the subset of repository metadata the CLI prints.
type Repository struct {
	FullName string
	Private  bool
}

// Hook identifies a registered webhook.
type Hook struct {
	ID  int64
	URL string
}
