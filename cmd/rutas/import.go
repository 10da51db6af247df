package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rutas-dev/rutas/core/cachestore"
	"github.com/rutas-dev/rutas/core/engine"
	"github.com/rutas-dev/rutas/core/route"
)

func importCmd() *cobra.Command {
	var (
		contextName string
		dir         string
		file        string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Write a JSON or YAML route file into a context's cache",
		Long: `Write a JSON or YAML route file into a context's cache snapshot.
Methods and URIs are validated here; action identifiers are recorded
as-is and resolve against the registry of the process that loads the
cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			var defs []route.Definition
			switch strings.ToLower(filepath.Ext(file)) {
			case ".yaml", ".yml":
				err = yaml.Unmarshal(data, &defs)
			default:
				err = json.Unmarshal(data, &defs)
			}
			if err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}

			for i := range defs {
				if defs[i].Method == "" {
					defs[i].Method = string(route.MethodGet)
				}
				m, err := route.ParseMethod(defs[i].Method)
				if err != nil {
					return fmt.Errorf("route %d: %w", i, err)
				}
				defs[i].Method = string(m)
				if err := route.ValidateURI(defs[i].URI); err != nil {
					return fmt.Errorf("route %d: %w", i, err)
				}
				if defs[i].Action == "" {
					return fmt.Errorf("route %d: missing action identifier", i)
				}
			}

			ctxName := engine.SanitizeContext(contextName)
			store, err := cachestore.NewFile(cacheDir(dir), ctxName)
			if err != nil {
				return err
			}
			if err := store.Save(context.Background(), cachestore.NewSnapshot(ctxName, defs)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d routes to %s\n", len(defs), store.Location())
			return nil
		},
	}

	cmd.Flags().StringVarP(&contextName, "context", "c", "default", "route table context")
	cmd.Flags().StringVarP(&dir, "cache-dir", "d", "", "cache base directory (default from RUTAS_CACHE_DIR)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "route file (.json, .yaml)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
