package main

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// formatResponse renders a command result as the requested format.
// "json" and "yaml" marshal the value; anything else falls back to a
// compact JSON rendering suitable for terminals.
func formatResponse(v interface{}, format string) (string, error) {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return string(data), nil
	case "json", "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal json: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
