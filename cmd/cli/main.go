package main

import (
	"context"
	"fmt"
	"os"

	"qareview/adapters/chart"
	"qareview/adapters/reportstore"
	"qareview/adapters/rng"
	"qareview/adapters/tabular"
	"qareview/app"
	"qareview/internal"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qareview",
		Short: "QA review toolkit: balanced sampling, error-rate analysis, comparison charts",
	}

	rootCmd.AddCommand(
		newSampleCmd(),
		newAnalyzeCmd(),
		newRenderCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSampleCmd() *cobra.Command {
	var out string
	var samples, categories int
	var seed int64

	cmd := &cobra.Command{
		Use:   "sample [dataset]",
		Short: "Draw a reproducible category-balanced sample of unique Q&A pairs",
		Long: `Deduplicate Q&A pairs, rank categories by frequency, and draw a seeded
balanced sample for manual review.

Example: qareview sample train.csv --samples 50 --categories 25 --seed 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			logger := internal.NewDefaultLogger()

			reader := tabular.NewDataReader(args[0])
			rows, err := reader.ReadDataset(ctx)
			if err != nil {
				return err
			}

			sampler := app.NewSamplerService(rng.New(), logger)
			report, err := sampler.Sample(ctx, rows, app.SampleOptions{
				SampleSize:    samples,
				CategoryCount: categories,
				Seed:          seed,
				SourceFile:    reader.Source(),
			})
			if err != nil {
				return err
			}

			if err := reportstore.New().Store(ctx, out, report); err != nil {
				return err
			}
			fmt.Printf("sampled %d Q&A pairs -> %s\n", report.Metadata.TotalSamples, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "qa_sample.json", "output sample report path")
	cmd.Flags().IntVar(&samples, "samples", 50, "target sample size")
	cmd.Flags().IntVar(&categories, "categories", 25, "number of top categories to balance across")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed for reproducible draws")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "analyze [dataset]",
		Short: "Compute per-chatbot error rates and the error-cause distribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			logger := internal.NewDefaultLogger()

			reader := tabular.NewDataReader(args[0])
			rows, err := reader.ReadDataset(ctx)
			if err != nil {
				return err
			}

			analyzer := app.NewAnalyzerService(logger)
			report, err := analyzer.Analyze(ctx, rows)
			if err != nil {
				return err
			}

			if err := reportstore.New().Store(ctx, out, report); err != nil {
				return err
			}
			fmt.Printf("analyzed %d rows across %d chatbots -> %s\n",
				report.Metadata.TotalRowsInDataset, report.Metadata.TotalChatbots, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "error_rate_report.json", "output analysis report path")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render [report]",
		Short: "Render the comparison chart from a finished analysis report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store := reportstore.New()

			report, err := store.LoadAnalysis(ctx, args[0])
			if err != nil {
				return err
			}

			png, err := chart.New().Render(ctx, report)
			if err != nil {
				return err
			}

			if err := store.StoreBytes(ctx, out, png); err != nil {
				return err
			}
			fmt.Printf("chart written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "error_rate_comparison.png", "output chart path")
	return cmd
}
