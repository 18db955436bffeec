package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/achievement-blocks/internal/schemas"
)

// Output formats
const (
	outputConsole = "console"
	outputJSON    = "json"
)

func checkOutputFormat(format string) error {
	if format != outputConsole && format != outputJSON {
		return fmt.Errorf("invalid output format %q (expected %s or %s)", format, outputConsole, outputJSON)
	}
	return nil
}

// marshalValidated marshals v and checks it against the named embedded schema
func marshalValidated(schemaName string, v any) ([]byte, error) {
	if err := schemas.ValidateValue(schemaName, v); err != nil {
		return nil, fmt.Errorf("output does not match %s: %w", schemaName, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return append(data, '\n'), nil
}

// writeJSON writes schema-checked JSON to w
func writeJSON(w io.Writer, schemaName string, v any) error {
	data, err := marshalValidated(schemaName, v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// writeJSONFile writes schema-checked JSON to path, creating parent directories
func writeJSONFile(path, schemaName string, v any) error {
	data, err := marshalValidated(schemaName, v)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
