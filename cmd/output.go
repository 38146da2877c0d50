package main

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// writeOutput encodes v to w in the requested format: "json" or "yaml".
func writeOutput(w io.Writer, v any, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close() //nolint:errcheck
		if err := enc.Encode(v); err != nil {
			return eris.Wrap(err, "encode yaml output")
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return eris.Wrap(err, "encode json output")
		}
		return nil
	default:
		return eris.Errorf("unknown output format %q", format)
	}
}
