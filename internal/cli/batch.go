package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/demetriusmayo/PathOfSearching/internal/model"
	"github.com/demetriusmayo/PathOfSearching/internal/pipeline"
	"github.com/demetriusmayo/PathOfSearching/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	// seedFile is defined in resolve.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Resolve every item dump in a directory in parallel",
	Long: `Batch resolves every *.txt file in a directory concurrently:
- One file per item (one modifier line per file line)
- Files are processed in parallel with a configurable worker count
- One JSON report is written per input file

Example:
  pathofsearching batch ./stash
  pathofsearching batch ./stash --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./pathofsearching-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 5*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&seedFile, "seed", "", "seed file with extra table entries")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no *.txt files in %s", dir)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Input dir:  %s (%d files)\n", dir, len(paths))
		fmt.Fprintf(os.Stderr, "Workers:    %d\n", concurrency)
		fmt.Fprintf(os.Stderr, "Output dir: %s\n", outputDir)
	}

	store, err := buildStore(seedFile)
	if err != nil {
		return err
	}
	resolver := pipeline.NewResolver(store)
	renderer := pipeline.NewRenderer()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	pool := worker.NewPool(concurrency, func(ctx context.Context, path string) (*model.Report, error) {
		return resolver.ResolveFile(path)
	})

	failed := 0
	for _, outcome := range pool.Resolve(ctx, paths) {
		if outcome.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", outcome.Path, outcome.Err)
			continue
		}

		base := strings.TrimSuffix(filepath.Base(outcome.Path), filepath.Ext(outcome.Path))
		outPath := filepath.Join(outputDir, base+".json")
		if err := renderer.RenderJSON(outcome.Report, outPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", outcome.Path, err)
			continue
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s: %d/%d lines resolved → %s\n",
				outcome.Path, outcome.Report.Matched,
				outcome.Report.Matched+outcome.Report.Unmatched, outPath)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}
