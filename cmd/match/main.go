// Command match runs the expert matcher and the session summarizer against
// the demo catalog, outside the HTTP server.
//
// Usage:
//
//	match "I need help with my startup pitch"
//	match --summarize
//	match --summarize --transcript notes.txt
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"expert-session-be/internal/bootstrap"
	"expert-session-be/internal/config"
	"expert-session-be/internal/mapper"
	"expert-session-be/internal/pkg/logger"
	"expert-session-be/internal/repository/memory"
	"expert-session-be/pkg/ai/matcher"
	"expert-session-be/pkg/ai/summary"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	flagSummarize  bool
	flagTranscript string
	flagTimeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "match [query...]",
	Short: "Match experts to a request and summarize a session transcript",
	RunE:  runMatch,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagSummarize, "summarize", "s", false, "also summarize a transcript")
	rootCmd.Flags().StringVarP(&flagTranscript, "transcript", "t", "", "transcript file (default: built-in sample)")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 60*time.Second, "timeout per model call")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log := logger.NewConsoleLogger()
	defer log.Sync()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	provider, err := bootstrap.NewLLMProvider(ctx, cfg, log)
	if err != nil {
		return err
	}
	if provider == nil {
		color.Yellow("No API key configured, results come from the fallback path")
	}

	query := strings.Join(args, " ")
	if query != "" {
		experts := memory.SeedExperts()
		candidates := mapper.NewExpertMapper().ToCandidates(experts)

		color.Cyan("\n[MATCH] %q", query)
		callCtx, cancel := context.WithTimeout(ctx, flagTimeout)
		res := matcher.NewMatcher(provider, log).Match(callCtx, query, candidates)
		cancel()

		color.Green("Source: %s", res.Source)
		byId := make(map[string]string, len(experts))
		for _, e := range experts {
			byId[e.Id] = e.Name + " (" + e.Title + ")"
		}
		for i, id := range res.IDs {
			fmt.Printf("  %d. %s  %s\n", i+1, color.HiWhiteString(id), byId[id])
		}
		if len(res.IDs) == 0 {
			color.Red("  no matches")
		}
	}

	if flagSummarize {
		transcript := memory.SampleTranscript
		if flagTranscript != "" {
			b, err := os.ReadFile(flagTranscript)
			if err != nil {
				return fmt.Errorf("read transcript: %w", err)
			}
			transcript = string(b)
		}

		color.Cyan("\n[SUMMARY] %d characters of transcript", len(transcript))
		callCtx, cancel := context.WithTimeout(ctx, flagTimeout)
		res := summary.NewSummarizer(provider, log).Summarize(callCtx, transcript)
		cancel()

		color.Green("Source: %s", res.Source)
		prettyPrint(res.Summary)
	}

	if query == "" && !flagSummarize {
		return cmd.Help()
	}
	return nil
}

func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}
