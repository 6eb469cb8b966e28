package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/demetriusmayo/PathOfSearching/internal/cache"
	"github.com/demetriusmayo/PathOfSearching/internal/model"
	"github.com/demetriusmayo/PathOfSearching/internal/stats"
	"github.com/demetriusmayo/PathOfSearching/internal/table"
	"github.com/spf13/cobra"
)

var (
	statsEndpoint string
	categories    []string
	noCache       bool
	fetchTimeout  time.Duration
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Fetch the trade API stats listing and rebuild the modifier table",
	Long: `Stats downloads the official listing of known stats, imports the entries
under the allow-listed category labels, and rebuilds the modifier table from
the built-in list plus the imported entries. The fetched listing is cached on
disk so later runs do not hit the API again.

Example:
  pathofsearching stats
  pathofsearching stats --categories Explicit,Implicit,Pseudo
  pathofsearching stats --no-cache`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsEndpoint, "endpoint", "", "stats endpoint URL (default from config)")
	statsCmd.Flags().StringSliceVar(&categories, "categories", nil, "category labels to import (default Explicit,Implicit)")
	statsCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	statsCmd.Flags().DurationVar(&fetchTimeout, "timeout", 30*time.Second, "fetch timeout")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	cfg := statsConfig()
	entries, err := fetchStats(ctx, cfg)
	if err != nil {
		return err
	}

	// Rebuild the table: built-in list first, imported entries on top
	// (last write wins on duplicate phrases).
	b := table.New()
	builtin := b.Len()
	perCategory := make(map[string]int)
	for _, e := range entries {
		b.Set(e.Phrase(), e.ID)
		perCategory[e.Category]++
	}

	t, err := b.Build()
	if err != nil {
		return fmt.Errorf("rebuild modifier table: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Imported %d stats from %s\n", len(entries), cfg.Stats.Endpoint)
	for _, cat := range cfg.Stats.Categories {
		if n := perCategory[cat]; n > 0 {
			fmt.Fprintf(os.Stderr, "  %-10s %d\n", cat, n)
		}
	}
	fmt.Fprintf(os.Stderr, "✓ Table rebuilt: %d phrases (%d built-in)\n", t.Len(), builtin)

	return nil
}

// statsConfig assembles the effective config for stats fetching
func statsConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	cfg.Cache.Enabled = !noCache
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = defaultCacheDir()
	}
	if statsEndpoint != "" {
		cfg.Stats.Endpoint = statsEndpoint
	}
	if len(categories) > 0 {
		cfg.Stats.Categories = categories
	}
	if fetchTimeout > 0 {
		cfg.HTTP.Timeout = fetchTimeout
	}
	return cfg
}

// fetchStats fetches the allow-listed entries from the remote listing
func fetchStats(ctx context.Context, cfg *model.Config) ([]stats.Entry, error) {
	var store cache.Cache
	if cfg.Cache.Enabled {
		store = cache.NewLayered(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	client := stats.NewClient(cfg, store)
	entries, err := client.Fetch(ctx, cfg.Stats.Categories)
	if err != nil {
		return nil, err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Fetched %d entries (%d categories allowed)\n", len(entries), len(cfg.Stats.Categories))
	}
	return entries, nil
}
