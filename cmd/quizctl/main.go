// Package main provides quizctl, a command line tool for validating question
// files and generating new questions outside the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quizservice/internal/config"
	"quizservice/internal/models"
	"quizservice/internal/observability"
	"quizservice/internal/parser"
	"quizservice/internal/services"
	"quizservice/internal/store"
	"quizservice/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "quizctl",
		Short:   "Manage quiz question files",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version.Version, version.Commit, version.BuildTime),
	}

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newGenerateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a question JSON file",
		Long:  "Loads a question file the same way the server does and reports how many records pass validation.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			logger := observability.NewLogger(&config.OpenTelemetryConfig{})
			ctx := context.Background()

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			var rawQuestions []json.RawMessage
			if err := json.Unmarshal(data, &rawQuestions); err != nil {
				return fmt.Errorf("%s is not a JSON array: %w", path, err)
			}

			s := store.New(ctx, path, logger)
			valid := s.Len()
			total := len(rawQuestions)

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d of %d questions valid\n", path, valid, total)
			if valid < total {
				return fmt.Errorf("%d invalid questions", total-valid)
			}
			return nil
		},
	}
}

func newGenerateCmd() *cobra.Command {
	var (
		topic      string
		difficulty string
		count      int
		outFile    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate questions through the configured AI backend",
		Long:  "Generates multiple-choice questions and prints them as JSON, or appends them to a question file with --out.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			logger := observability.NewLogger(&cfg.OpenTelemetry)
			ctx := context.Background()

			provider, err := services.NewGenerationProvider(ctx, &cfg.AI)
			if err != nil {
				return fmt.Errorf("create generation provider: %w", err)
			}
			if provider == nil {
				return fmt.Errorf("no AI backend configured, set AI_PROVIDER and AI_API_KEY")
			}

			generationService := services.NewGenerationService(provider, parser.NewParser(logger), logger)

			genCtx, cancel := context.WithTimeout(ctx, config.AIRequestTimeout)
			defer cancel()

			questions := generationService.GenerateQuestions(genCtx, topic, difficulty, count)
			if len(questions) == 0 {
				return fmt.Errorf("backend produced no parseable questions")
			}

			if outFile != "" {
				total, err := appendQuestionsToFile(outFile, questions)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Appended %d questions to %s (%d total)\n", len(questions), outFile, total)
				return nil
			}

			encoded, err := json.MarshalIndent(questions, "", "  ")
			if err != nil {
				return fmt.Errorf("encode questions: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", config.DefaultGenerationTopic, "topic to generate questions about")
	cmd.Flags().StringVar(&difficulty, "difficulty", config.DefaultGenerationLevel, "difficulty level for the generated questions")
	cmd.Flags().IntVar(&count, "count", config.DefaultGenerationCount, "number of questions to request")
	cmd.Flags().StringVar(&outFile, "out", "", "append questions to this file instead of printing them")

	return cmd
}

// appendQuestionsToFile merges questions into the JSON array at path,
// creating the file when absent, and returns the resulting total.
func appendQuestionsToFile(path string, questions []models.Question) (int, error) {
	existing := []models.Question{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, &existing); err != nil {
			return 0, fmt.Errorf("existing file %s is not a JSON array: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	merged := append(existing, questions...)

	encoded, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode questions: %w", err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}

	return len(merged), nil
}
