package main

import (
	"context"
	"fmt"

	"shulelink/internal/app"
	"shulelink/internal/domain"
	"shulelink/internal/validation"

	"github.com/spf13/cobra"
)

func newQuoteCmd(build builder) *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Print the quote of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withComponents(cmd, build, func(ctx context.Context, c *app.Components) error {
				return writeJSON(cmd.OutOrStdout(), c.Content.GetDailyQuote(ctx))
			})
		},
	}
}

func newNotesCmd(build builder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Generate study notes for a topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, grade, topic := topicFlags(cmd)
			if errs := validation.NewValidator().ValidateTopic(subject, grade, topic); len(errs) > 0 {
				return errs
			}
			comprehensive, _ := cmd.Flags().GetBool("comprehensive")

			return withComponents(cmd, build, func(ctx context.Context, c *app.Components) error {
				notes := c.Content.GetTopicNotes
				if comprehensive {
					notes = c.Content.GetComprehensiveNotes
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), notes(ctx, subject, grade, topic).Text)
				return err
			})
		},
	}
	addTopicFlags(cmd)
	cmd.Flags().Bool("comprehensive", false, "Generate the extended learning guide")
	return cmd
}

func newQuizCmd(build builder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Generate a quiz batch for a topic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, grade, topic := topicFlags(cmd)
			count, _ := cmd.Flags().GetInt("count")
			if errs := validation.NewValidator().ValidateQuizRequest(subject, grade, topic, count); len(errs) > 0 {
				return errs
			}

			return withComponents(cmd, build, func(ctx context.Context, c *app.Components) error {
				return writeJSON(cmd.OutOrStdout(), c.Content.GetQuizQuestions(ctx, subject, grade, topic, count))
			})
		},
	}
	addTopicFlags(cmd)
	cmd.Flags().Int("count", validation.DefaultQuizCount, "Number of questions (1-50)")
	return cmd
}

func newWarmCmd(build builder) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Pre-generate notes and quizzes for the warm-up or catalog topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			refresh, _ := cmd.Flags().GetBool("refresh")
			grade, _ := cmd.Flags().GetString("grade")

			return withComponents(cmd, build, func(ctx context.Context, c *app.Components) error {
				if c.Cache == nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "warning: no cache configured, generated content will not be kept")
				}
				var svc domain.WarmupService
				switch {
				case grade != "":
					var err error
					if svc, err = c.CatalogWarmup(grade, refresh); err != nil {
						return err
					}
				case refresh:
					svc = c.RefreshWarmup
				default:
					svc = c.Warmup
				}
				report, err := svc.WarmContent(ctx)
				if werr := writeJSON(cmd.OutOrStdout(), report); werr != nil && err == nil {
					err = werr
				}
				return err
			})
		},
	}
	cmd.Flags().Bool("refresh", false, "Drop cached content for each topic before regenerating it")
	cmd.Flags().String("grade", "", "Warm the reading catalog topics for this grade instead of the configured topics")
	return cmd
}
