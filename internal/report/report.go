// Package report renders estimates for the terminal and for machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"vramest/internal/quant"
	"vramest/pkg/types"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatProm Format = "prom"
)

// Formats lists every supported format.
func Formats() []Format { return []Format{FormatText, FormatJSON, FormatYAML, FormatProm} }

// ParseFormat maps a user-supplied name onto a Format. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "prom", "prometheus":
		return FormatProm, nil
	}
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return "", fmt.Errorf("unsupported output format %q (want %s)", s, strings.Join(names, "|"))
}

// printer groups thousands the way en-US readers expect.
var printer = message.NewPrinter(language.English)

// Write renders e to w in format f.
func Write(w io.Writer, f Format, e types.Estimate) error {
	switch f {
	case FormatText, "":
		return writeText(w, e)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(e)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(e); err != nil {
			return err
		}
		return enc.Close()
	case FormatProm:
		return writeProm(w, e)
	default:
		return fmt.Errorf("unsupported output format %q", f)
	}
}

func writeText(w io.Writer, e types.Estimate) error {
	if _, err := fmt.Fprintf(w, "Model: %s params, quant = %s\n", e.Parameter, e.Quantization); err != nil {
		return err
	}
	_, err := printer.Fprintf(w, "Approx memory usage: %.0f bytes (%.2f MiB) = %.2f GiB\n", e.Size.Bytes, e.Size.MiB, e.Size.GiB)
	return err
}

// WriteTags lists table entries one per line, or as a document for json/yaml.
func WriteTags(w io.Writer, f Format, entries []quant.Entry) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%-8s %2d bits/param\n", e.Tag, e.Bits); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("output format %q not supported for tag listing", f)
	}
}
