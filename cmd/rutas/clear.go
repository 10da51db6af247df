package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rutas-dev/rutas/core/cachestore"
	"github.com/rutas-dev/rutas/core/engine"
)

func clearCmd() *cobra.Command {
	var (
		contextName string
		dir         string
	)

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the cached snapshot for a context",
		Long: `Delete the cached snapshot for a context. The next engine constructed
for the context starts from an empty table and rewrites the cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cachestore.NewFile(cacheDir(dir), engine.SanitizeContext(contextName))
			if err != nil {
				return err
			}
			if err := store.Clear(context.Background()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", store.Location())
			return nil
		},
	}

	cmd.Flags().StringVarP(&contextName, "context", "c", "default", "route table context")
	cmd.Flags().StringVarP(&dir, "cache-dir", "d", "", "cache base directory (default from RUTAS_CACHE_DIR)")
	return cmd
}
