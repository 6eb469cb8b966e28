package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/demetriusmayo/PathOfSearching/internal/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pathofsearching",
	Short: "PathOfSearching - resolve item modifier text to trade-search stat ids",
	Long: `PathOfSearching translates the modifier lines of an in-game item into the
stat identifiers used by the official trade-search API.

Paste or pipe modifier lines in, and each line is matched against a table of
known modifier phrases. The table ships with a built-in list, can be extended
from a local seed file, and can be rebuilt from the live trade stats listing.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for PathOfSearching.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pathofsearching v1.2.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.pathofsearching/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.pathofsearching")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match POFS_*
	viper.SetEnvPrefix("POFS")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// defaultCacheDir resolves the on-disk cache location
func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pathofsearching-cache"
	}
	return filepath.Join(home, ".pathofsearching", "cache")
}

// buildStore constructs the modifier table from the built-in list plus an
// optional seed file. A missing seed file is non-fatal: the built-in table
// still works, so the error is only reported.
func buildStore(seedPath string) (*table.Store, error) {
	b := table.New()

	if seedPath != "" {
		added, err := b.LoadSeedFile(seedPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else if verbose {
			fmt.Fprintf(os.Stderr, "Seed file %s: %d entries\n", seedPath, added)
		}
	}

	t, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("build modifier table: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Modifier table: %d phrases\n", t.Len())
	}
	return table.NewStore(t), nil
}
