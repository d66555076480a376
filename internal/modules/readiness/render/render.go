// Package render encodes readiness reports as JSON, YAML, msgpack, Markdown or HTML.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/aristath/quantum-readiness/internal/modules/readiness"
)

// Format is an output encoding
type Format string

// Supported formats
const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMsgpack  Format = "msgpack"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

var contentTypes = map[Format]string{
	FormatJSON:     "application/json",
	FormatYAML:     "application/yaml",
	FormatMsgpack:  "application/msgpack",
	FormatMarkdown: "text/markdown; charset=utf-8",
	FormatHTML:     "text/html; charset=utf-8",
}

var formatAliases = map[string]Format{
	"json":     FormatJSON,
	"yaml":     FormatYAML,
	"yml":      FormatYAML,
	"msgpack":  FormatMsgpack,
	"markdown": FormatMarkdown,
	"md":       FormatMarkdown,
	"html":     FormatHTML,
}

// ParseFormat resolves a format name; empty means JSON
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FormatJSON, nil
	}
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}
	return "", fmt.Errorf("unsupported report format %q", name)
}

// ContentType returns the HTTP media type for the format
func (f Format) ContentType() string {
	return contentTypes[f]
}

// Render writes the report in the requested format
func Render(w io.Writer, report *readiness.AnalysisReport, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatYAML:
		return YAML(w, report)
	case FormatMsgpack:
		return Msgpack(w, report)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(report))
		return err
	case FormatHTML:
		page, err := HTML(report)
		if err != nil {
			return err
		}
		_, err = w.Write(page)
		return err
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

// YAML encodes any value as YAML with two-space indentation
func YAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

// Msgpack encodes any value as msgpack, keyed by the json field names
func Msgpack(w io.Writer, v interface{}) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode msgpack: %w", err)
	}
	return nil
}

const htmlHead = "<!doctype html><html><head><meta charset='utf-8'><title>Quantum Readiness Report</title>" +
	"<style>body{font-family:system-ui,sans-serif;max-width:960px;margin:0 auto;padding:1rem;color:#1c1917;} " +
	"table{width:100%;border-collapse:collapse;font-size:0.9rem;} " +
	"th,td{border:1px solid #a8a29e;padding:0.35rem 0.45rem;text-align:left;vertical-align:top;} " +
	"thead th{background:#f1f5f9;}</style></head><body>"

const htmlFoot = "</body></html>"

// HTML converts the Markdown report into a standalone HTML page
func HTML(report *readiness.AnalysisReport) ([]byte, error) {
	var content bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(Markdown(report)), &content); err != nil {
		return nil, fmt.Errorf("markdown convert: %w", err)
	}

	var page bytes.Buffer
	page.WriteString(htmlHead)
	page.Write(content.Bytes())
	page.WriteString(htmlFoot)
	return page.Bytes(), nil
}
