// Command rutas is operational tooling for route table caches: inspect a
// context's snapshot, clear it, or load a route file into it. It works
// at the cache store level, so no handler registry is needed; action
// identifiers resolve in the host process that loads the cache.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "rutas",
		Short:   "Route table cache tooling",
		Version: version,
		Long: `rutas manages the per-context route table caches written by the
routing engine. Each context owns one snapshot file under the cache
directory (RUTAS_CACHE_DIR, default storage/cache/rutas).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		routesCmd(),
		clearCmd(),
		importCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
