package engine

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rutas-dev/rutas/core/route"
)

// ImportRoutes bulk-inserts route definitions, running each through the
// full AddRoute validation path. Method defaults to GET when omitted.
// The first failing record aborts the import.
func (e *Engine) ImportRoutes(defs []route.Definition) error {
	for _, def := range defs {
		if err := e.addDefinition(def); err != nil {
			return err
		}
	}
	return nil
}

// ImportJSON bulk-inserts routes from a JSON array of
// {method?, uri, action, middleware?} objects. A payload that does not
// parse is fatal for the call.
func (e *Engine) ImportJSON(data []byte) error {
	var defs []route.Definition
	if err := json.Unmarshal(data, &defs); err != nil {
		return fmt.Errorf("%w: %w", ErrImportParse, err)
	}
	return e.ImportRoutes(defs)
}

// ImportYAML is ImportJSON for YAML payloads.
func (e *Engine) ImportYAML(data []byte) error {
	var defs []route.Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return fmt.Errorf("%w: %w", ErrImportParse, err)
	}
	return e.ImportRoutes(defs)
}
