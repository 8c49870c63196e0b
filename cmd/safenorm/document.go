package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/safenorm/internal/config"
)

const maxInputSize = 64 * 1024 * 1024

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// readDocument decodes the document named by name ("-" for r).
func readDocument(r io.Reader, name, format, numberMode string) (any, error) {
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(io.LimitReader(r, maxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(data) > maxInputSize {
		return nil, fmt.Errorf("input too large (max %d bytes)", maxInputSize)
	}

	var doc any
	switch detectFormat(name, format) {
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode YAML input: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if numberMode == config.NumberModeJSONNumber {
			dec.UseNumber()
		}
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode JSON input: %w", err)
		}
	}
	return doc, nil
}

// detectFormat resolves "auto" from the file extension; stdin defaults to JSON.
func detectFormat(name, format string) string {
	if format != "auto" {
		return format
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

func writeDocument(w io.Writer, v any, encoding string, indent bool) error {
	switch encoding {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML output: %w", err)
		}
		return enc.Close()
	case "dump":
		dumper.Fdump(w, v)
		return nil
	}

	var (
		b   []byte
		err error
	)
	if indent {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
