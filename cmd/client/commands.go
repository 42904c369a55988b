package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/mental-detox/internal/ports"
	"github.com/jsamuelsen/mental-detox/internal/tui"
)

// defaultCardWidth fits an 80-column terminal.
const defaultCardWidth = 72

func newIssuesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "issues",
		Short: "List the available issues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, opts, false)
			if err != nil {
				return err
			}

			issues, notice := s.browse(opts.favorites).Issues(s.ctx)
			if notice != "" {
				return errors.New(notice)
			}

			out := cmd.OutOrStdout()
			for _, issue := range issues {
				fmt.Fprintln(out, issue)
			}

			return nil
		},
	}
}

func newShowCmd(opts *options) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "show [issue]",
		Short: "Print one random card for an issue, or for a random issue",
		Example: `  mental-detox show anxiety
  mental-detox show "Work Stress"
  mental-detox show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts, false)
			if err != nil {
				return err
			}

			svc := s.browse(opts.favorites)

			issue := strings.TrimSpace(strings.Join(args, " "))

			var notice string
			if issue == "" {
				_, _, notice = svc.Random(s.ctx)
			} else {
				_, notice = svc.Select(s.ctx, issue)
			}

			rec := svc.Current()
			if notice != "" || rec == nil {
				return errors.New(lo.CoalesceOrEmpty(notice, "no record returned"))
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderCard(rec, width))

			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", defaultCardWidth, "card width in columns, 0 to disable wrapping")

	return cmd
}

func newHealthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the dataset service is reachable and loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, opts, false)
			if err != nil {
				return err
			}

			registry := ports.NewHealthRegistry()
			if err := registry.Register(s.adapter); err != nil {
				return fmt.Errorf("registering health check: %w", err)
			}

			result := registry.CheckAll(s.ctx)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", s.cfg.Client.BaseURL, result.Status)

			for _, name := range registry.Names() {
				check := result.Checks[name]
				line := fmt.Sprintf("  %s: %s (%s)", name, check.Status, check.Duration.Round(time.Millisecond))

				if check.Message != "" {
					line += " " + check.Message
				}

				fmt.Fprintln(out, line)
			}

			if result.Status != ports.HealthStatusHealthy {
				return errors.New("dataset service is unhealthy")
			}

			return nil
		},
	}
}
