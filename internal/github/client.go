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

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v66/github"
)

// commitPageSize caps a pull request commit listing at one API page.
const commitPageSize = 100

// maxDescriptionLen is GitHub's limit on status description length.
const maxDescriptionLen = 140

// unauthenticatedCoreLimit is the hourly request allowance GitHub grants
// without credentials. A limit at or below it means the token was ignored.
const unauthenticatedCoreLimit = 60

// apiClient implements the Client interface using go-github.
type apiClient struct {
	client *github.Client
}

// NewClient creates a new GitHub client authenticated with the provided
// token. An empty token yields an unauthenticated client.
func NewClient(token string) Client {
	var httpClient *http.Client
	if token != "" {
		httpClient = github.NewClient(nil).Client()
		httpClient.Transport = &github.BasicAuthTransport{
			Username: "token",
			Password: token,
		}
	}

	return &apiClient{client: github.NewClient(httpClient)}
}

// newAPIClient wraps an existing go-github client. Tests use it to point
// the bridge at an httptest server.
func newAPIClient(gh *github.Client) *apiClient {
	return &apiClient{client: gh}
}

// ListPullRequestCommits retrieves the first page of commits for a pull
// request and converts them to the domain model.
func (c *apiClient) ListPullRequestCommits(ctx context.Context, repo string, number int) ([]*Commit, error) {
	owner, name, err := splitFullName(repo)
	if err != nil {
		return nil, err
	}

	opts := &github.ListOptions{PerPage: commitPageSize}
	commits, _, err := c.client.PullRequests.ListCommits(ctx, owner, name, number, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits for %s#%d: %w", repo, number, err)
	}

	result := make([]*Commit, 0, len(commits))
	for _, commit := range commits {
		if converted := convertCommit(commit); converted != nil {
			result = append(result, converted)
		}
	}
	return result, nil
}

// CreateStatus attaches a commit status to the given sha.
func (c *apiClient) CreateStatus(ctx context.Context, repo, sha string, status *Status) error {
	owner, name, err := splitFullName(repo)
	if err != nil {
		return err
	}

	repoStatus := &github.RepoStatus{
		State:       github.String(string(status.State)),
		Context:     github.String(status.Context),
		Description: github.String(truncateDescription(status.Description)),
	}
	if status.TargetURL != "" {
		repoStatus.TargetURL = github.String(status.TargetURL)
	}

	if _, _, err := c.client.Repositories.CreateStatus(ctx, owner, name, sha, repoStatus); err != nil {
		return fmt.Errorf("failed to create %s status on %s@%s: %w", status.State, repo, sha, err)
	}
	return nil
}

// CreateHook registers a JSON pull_request webhook carrying the shared
// secret, so GitHub signs every delivery with the value the verifier holds.
func (c *apiClient) CreateHook(ctx context.Context, repo, hookURL, secret string) (*Hook, error) {
	owner, name, err := splitFullName(repo)
	if err != nil {
		return nil, err
	}

	hook := &github.Hook{
		Active: github.Bool(true),
		Events: []string{"pull_request"},
		Config: &github.HookConfig{
			URL:         github.String(hookURL),
			ContentType: github.String("json"),
			Secret:      github.String(secret),
		},
	}

	created, _, err := c.client.Repositories.CreateHook(ctx, owner, name, hook)
	if err != nil {
		return nil, fmt.Errorf("failed to create hook on %s: %w", repo, err)
	}

	return &Hook{ID: created.GetID(), URL: created.GetConfig().GetURL()}, nil
}

// ListRepositories returns the first page of repositories visible to the
// authenticated user.
func (c *apiClient) ListRepositories(ctx context.Context) ([]*Repository, error) {
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	repos, _, err := c.client.Repositories.ListByAuthenticatedUser(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	result := make([]*Repository, 0, len(repos))
	for _, repo := range repos {
		if repo == nil {
			continue
		}
		result = append(result, &Repository{
			FullName: repo.GetFullName(),
			Private:  repo.GetPrivate(),
		})
	}
	return result, nil
}

// CheckCredentials verifies the configured token actually authenticates by
// inspecting the core rate limit, which is 60/h for anonymous callers.
func (c *apiClient) CheckCredentials(ctx context.Context) error {
	limits, _, err := c.client.RateLimit.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify credentials: %w", err)
	}
	if limits.GetCore().Limit <= unauthenticatedCoreLimit {
		return fmt.Errorf("credentials fail authentication: anonymous rate limit in effect")
	}
	return nil
}

// convertCommit converts a GitHub repository commit to the domain model.
// Commits without a sha are dropped; a missing author login converts to an
// empty string rather than failing the listing.
func convertCommit(commit *github.RepositoryCommit) *Commit {
	if commit == nil || commit.GetSHA() == "" {
		return nil
	}
	return &Commit{
		SHA:     commit.GetSHA(),
		Author:  commit.GetAuthor().GetLogin(),
		Message: commit.GetCommit().GetMessage(),
	}
}

// splitFullName splits an "owner/name" repository qualifier.
func splitFullName(repo string) (string, string, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/name", repo)
	}
	return owner, name, nil
}

// truncateDescription bounds a status description to GitHub's limit.
func truncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= maxDescriptionLen {
		return s
	}
	return string(runes[:maxDescriptionLen-1]) + "…"
}
