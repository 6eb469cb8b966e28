package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/demetriusmayo/PathOfSearching/internal/model"
	"github.com/demetriusmayo/PathOfSearching/internal/pipeline"
	"github.com/demetriusmayo/PathOfSearching/internal/table"
	"github.com/spf13/cobra"
)

var (
	inFile    string
	outJSON   string
	outXLSX   string
	seedFile  string
	useRemote bool
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve [line...]",
	Short: "Resolve item modifier lines to trade stat identifiers",
	Long: `Resolve matches each modifier line against the table of known phrases and
reports the winning phrase, its stat identifiers, and the captured numeric
values. Lines can be given as arguments, read from a file, or piped on stdin.

Example:
  pathofsearching resolve "+42 to maximum life"
  pathofsearching resolve --file item.txt --json item.json
  pathofsearching resolve --file item.txt --xlsx item.xlsx
  poe-clipboard | pathofsearching resolve`,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&inFile, "file", "", "read modifier lines from file (one per line)")
	resolveCmd.Flags().StringVar(&outJSON, "json", "-", "output JSON path (\"-\" for stdout)")
	resolveCmd.Flags().StringVar(&outXLSX, "xlsx", "", "output XLSX path (optional)")
	resolveCmd.Flags().StringVar(&seedFile, "seed", "", "seed file with extra table entries")
	resolveCmd.Flags().BoolVar(&useRemote, "remote", false, "merge phrases from the (cached) trade stats listing")
}

func runResolve(cmd *cobra.Command, args []string) error {
	store, err := buildStore(seedFile)
	if err != nil {
		return err
	}

	if useRemote {
		// A failed fetch is recoverable: the table built so far stays in use.
		if err := mergeRemote(cmd.Context(), store); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (continuing with local table)\n", err)
		}
	}

	resolver := pipeline.NewResolver(store)
	renderer := pipeline.NewRenderer()

	switch {
	case inFile != "":
		r, err := resolver.ResolveFile(inFile)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", inFile, err)
		}
		return render(renderer, r)
	case len(args) > 0:
		return render(renderer, resolver.ResolveLines("args", args))
	default:
		// Read from stdin
		var lines []string
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		return render(renderer, resolver.ResolveLines("stdin", lines))
	}
}

// mergeRemote rebuilds the table with the remote stats merged in and swaps
// it into the store atomically
func mergeRemote(ctx context.Context, store *table.Store) error {
	cfg := statsConfig()
	entries, err := fetchStats(ctx, cfg)
	if err != nil {
		return err
	}

	b := table.New()
	if seedFile != "" {
		_, _ = b.LoadSeedFile(seedFile) // already reported by buildStore
	}
	for _, e := range entries {
		b.Set(e.Phrase(), e.ID)
	}

	t, err := b.Build()
	if err != nil {
		return fmt.Errorf("rebuild modifier table: %w", err)
	}
	store.Swap(t)
	return nil
}

// render writes the report to the selected outputs
func render(renderer *pipeline.Renderer, report *model.Report) error {
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Resolved %d of %d lines\n", report.Matched, report.Matched+report.Unmatched)
	}

	if err := renderer.RenderJSON(report, outJSON); err != nil {
		return fmt.Errorf("render JSON: %w", err)
	}
	if outXLSX != "" {
		if err := renderer.RenderXLSX(report, outXLSX); err != nil {
			return fmt.Errorf("render XLSX: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote worksheet: %s\n", outXLSX)
		}
	}
	return nil
}
