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

// Command buzzhook runs the banned-buzzword webhook service and the
// companion hook-management commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/buzzhook/buzzhook/internal/check"
	"github.com/buzzhook/buzzhook/internal/config"
	"github.com/buzzhook/buzzhook/internal/github"
	"github.com/buzzhook/buzzhook/internal/log"
	"github.com/buzzhook/buzzhook/internal/webhook"
)

func runWithSignals(run func(context.Context) error) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	select {
	case <-sigCh:
		cancel()
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
}

func runServe(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := log.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.RequireToken(); err != nil {
		return err
	}
	pattern, err := cfg.Pattern()
	if err != nil {
		return err
	}

	gh := github.NewClient(cfg.GitHub.Token)

	return runWithSignals(func(ctx context.Context) error {
		if err := gh.CheckCredentials(ctx); err != nil {
			return err
		}
		logger.Info("GitHub credentials verified")

		if cfg.SecretGenerated {
			logger.Warn("webhook secret was generated for this run; deliveries signed with another secret will be denied. Set WEBHOOK_SECRET and re-register hooks to persist verification across restarts")
		}

		workflow := check.NewWorkflow(gh, logger.Named("check"), cfg.Check.ContextLabel, pattern)
		verifier := webhook.NewVerifier([]byte(cfg.GitHub.WebhookSecret), logger.Named("webhook"))
		dispatcher := webhook.NewDispatcher(workflow, "pull_request", cfg.Check.Actions, logger.Named("dispatch"))
		server := webhook.NewServer(cfg.Listen, verifier, dispatcher, logger.Named("webhook"))

		return server.Start(ctx)
	})
}

func runHookCreate(configPath, repo, hookURL string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.RequireToken(); err != nil {
		return err
	}
	if cfg.SecretGenerated {
		return fmt.Errorf("no webhook secret configured: a hook registered with a one-off secret could never be verified. Set WEBHOOK_SECRET or github.webhook_secret first")
	}

	gh := github.NewClient(cfg.GitHub.Token)
	return runWithSignals(func(ctx context.Context) error {
		hook, err := gh.CreateHook(ctx, repo, hookURL, cfg.GitHub.WebhookSecret)
		if err != nil {
			return err
		}
		fmt.Printf("hook %d registered on %s -> %s\n", hook.ID, repo, hook.URL)
		return nil
	})
}

func runRepos(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.RequireToken(); err != nil {
		return err
	}

	gh := github.NewClient(cfg.GitHub.Token)
	return runWithSignals(func(ctx context.Context) error {
		repos, err := gh.ListRepositories(ctx)
		if err != nil {
			return err
		}
		for _, repo := range repos {
			visibility := "public"
			if repo.Private {
				visibility = "private"
			}
			fmt.Printf("%s\t%s\n", repo.FullName, visibility)
		}
		return nil
	})
}

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "buzzhook",
		Short:         "A CI check that fails pull requests whose commit messages use banned buzzwords",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the webhook server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	var repo, hookURL string
	hookCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Register the pull_request webhook on a repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHookCreate(configPath, repo, hookURL)
		},
	}
	hookCreateCmd.Flags().StringVar(&repo, "repo", "", "Repository as owner/name")
	hookCreateCmd.Flags().StringVar(&hookURL, "url", "", "Public URL of the /webhook endpoint")
	_ = hookCreateCmd.MarkFlagRequired("repo")
	_ = hookCreateCmd.MarkFlagRequired("url")

	hookCmd := &cobra.Command{
		Use:   "hook",
		Short: "Manage webhook registrations",
	}
	hookCmd.AddCommand(hookCreateCmd)

	reposCmd := &cobra.Command{
		Use:   "repos",
		Short: "List repositories visible to the configured token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepos(configPath)
		},
	}

	rootCmd.AddCommand(serveCmd, hookCmd, reposCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
