package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/naka-gawa/devfolio/internal/client"
	"github.com/naka-gawa/devfolio/internal/domain"
	"github.com/naka-gawa/devfolio/internal/usecase"
	"github.com/naka-gawa/devfolio/internal/view"
	"github.com/spf13/cobra"
)

type snapshotOutput struct {
	Username      string              `json:"username"`
	ProfileStatus view.Status         `json:"profile_status"`
	ReposStatus   view.Status         `json:"repos_status"`
	Panels        view.Panels         `json:"panels"`
	Summary       *domain.RepoSummary `json:"summary,omitempty"`
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Loads the GitHub section once and prints it as JSON",
	Long: `Mounts the GitHub activity section, waits for both the profile and the
repository requests to settle and prints the resulting panels with a star
summary as JSON. With --endpoint the data is read from a running server,
so failures show up as error panels; otherwise the local proxy is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd, map[string]string{"username": "github.username"})
		if err != nil {
			return err
		}
		endpoint, _ := cmd.Flags().GetString("endpoint")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		var source view.Source
		if endpoint != "" {
			c, err := client.NewAPIClient(endpoint, nil, logger)
			if err != nil {
				return err
			}
			source = c
		} else {
			proxy, err := buildProxy(cfg, logger)
			if err != nil {
				return err
			}
			source = usecase.ProxySource{Proxy: proxy}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		section := view.NewGitHubSection(source, cfg.GitHub.Username, logger)
		section.Mount(ctx)
		if err := section.Wait(ctx); err != nil {
			return fmt.Errorf("GitHub section did not settle: %w", err)
		}
		snap := section.Snapshot()
		section.Unmount()

		out := snapshotOutput{
			Username:      cfg.GitHub.Username,
			ProfileStatus: snap.Profile.Status(),
			ReposStatus:   snap.Repos.Status(),
			Panels:        view.BuildPanels(snap, cfg.ProfileURL()),
		}
		if repos, ok := snap.Repos.Value(); ok {
			summary, err := usecase.Summarize(repos)
			if err != nil {
				return fmt.Errorf("failed to summarize repositories: %w", err)
			}
			out.Summary = &summary
		}

		jsonData, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot to JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.Flags().StringP("username", "u", "", "GitHub account to show (defaults to GITHUB_USERNAME)")
	snapshotCmd.Flags().StringP("endpoint", "e", "", "Base URL of a running server, e.g. http://localhost:5000")
	snapshotCmd.Flags().Duration("timeout", 30*time.Second, "How long to wait for both requests")
}
