package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rutas-dev/rutas/core/cachestore"
	"github.com/rutas-dev/rutas/core/config"
	"github.com/rutas-dev/rutas/core/engine"
)

func cacheDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	var cfg engine.Config
	config.MustLoad(&cfg)
	return cfg.CacheDir
}

func routesCmd() *cobra.Command {
	var (
		contextName string
		dir         string
	)

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the routes cached for a context",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cachestore.NewFile(cacheDir(dir), engine.SanitizeContext(contextName))
			if err != nil {
				return err
			}

			snap, err := store.Load(context.Background())
			if err != nil {
				return err
			}
			if snap == nil {
				return fmt.Errorf("no cache snapshot at %s", store.Location())
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tURI\tACTION\tMIDDLEWARE")
			for _, def := range snap.Routes {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					def.Method, def.URI, def.Action, strings.Join(def.Middleware, ","))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&contextName, "context", "c", "default", "route table context")
	cmd.Flags().StringVarP(&dir, "cache-dir", "d", "", "cache base directory (default from RUTAS_CACHE_DIR)")
	return cmd
}
