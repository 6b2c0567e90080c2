package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"shulelink/internal/app"
	"shulelink/internal/config"
	"shulelink/internal/logger"

	"github.com/spf13/cobra"
)

// builder assembles the pipeline; tests replace it.
type builder func(ctx context.Context) (*app.Components, error)

func defaultBuilder(ctx context.Context) (*app.Components, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return app.Build(ctx, cfg, logger.Get())
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(defaultBuilder)
}

func newRootCmdWith(build builder) *cobra.Command {
	root := &cobra.Command{
		Use:           "contentgen",
		Short:         "Generate ShuleLink learning content",
		Long:          "contentgen produces quotes, notes and quizzes through the provider cascade and warms the content cache.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newQuoteCmd(build))
	root.AddCommand(newNotesCmd(build))
	root.AddCommand(newQuizCmd(build))
	root.AddCommand(newWarmCmd(build))
	return root
}

// withComponents builds the pipeline, runs fn and releases resources.
func withComponents(cmd *cobra.Command, build builder, fn func(ctx context.Context, c *app.Components) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	c, err := build(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = c.Close(context.WithoutCancel(ctx))
		_ = logger.Sync()
	}()
	return fn(ctx, c)
}

func addTopicFlags(cmd *cobra.Command) {
	cmd.Flags().String("subject", "", "Subject, e.g. Mathematics")
	cmd.Flags().String("grade", "", "Grade level, e.g. 4")
	cmd.Flags().String("topic", "", "Topic, e.g. Fractions")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("grade")
	_ = cmd.MarkFlagRequired("topic")
}

func topicFlags(cmd *cobra.Command) (subject, grade, topic string) {
	subject, _ = cmd.Flags().GetString("subject")
	grade, _ = cmd.Flags().GetString("grade")
	topic, _ = cmd.Flags().GetString("topic")
	return subject, grade, topic
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
