// Package output renders API results as a table, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"go.yaml.in/yaml/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jfmyers9/rdio/pkg/rdio"
)

// Format is an output encoding.
type Format string

// Output formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
}

// Printer writes results to W in Format. Width limits table rows to that
// many display columns; zero means unlimited.
type Printer struct {
	W      io.Writer
	Format Format
	Width  int
}

const columnSep = "  "

// Entities prints a list of entities. Tables get one summary row per
// entity; JSON and YAML carry every field plus the "type" tag.
func (p *Printer) Entities(list []rdio.Entity) error {
	if p.Format != FormatTable {
		return p.Value(rdio.Entities(list))
	}

	rows := make([][]string, 0, len(list))
	for _, e := range list {
		s, err := Summarize(e)
		if err != nil {
			return err
		}
		rows = append(rows, []string{s.Type, s.Key, s.Name, s.Detail})
	}
	return p.Table([]string{"type", "key", "name", "detail"}, rows)
}

// Value prints any JSON-encodable value. In table format it falls back to
// indented JSON.
func (p *Printer) Value(v any) error {
	switch p.Format {
	case FormatYAML:
		// Go through JSON so the wire names and entity tags are kept
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		var generic any
		if err := json.Unmarshal(b, &generic); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = p.W.Write(out)
		return err

	default:
		enc := json.NewEncoder(p.W)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	}
}

// Table prints headers and rows with aligned columns. Headers are upper
// cased.
func (p *Printer) Table(headers []string, rows [][]string) error {
	natural := make([]int, len(headers))
	for i, h := range headers {
		natural[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(natural); i++ {
			natural[i] = max(natural[i], runewidth.StringWidth(row[i]))
		}
	}
	widths := fitColumns(natural, runewidth.StringWidth(columnSep), p.Width)

	line := func(cells []string) string {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = padToWidth(cell, widths[i])
		}
		return strings.TrimRightFunc(strings.Join(parts, columnSep), unicode.IsSpace)
	}

	upper := cases.Upper(language.English)
	upperHeaders := make([]string, len(headers))
	for i, h := range headers {
		upperHeaders[i] = upper.String(h)
	}

	if _, err := fmt.Fprintln(p.W, line(upperHeaders)); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(p.W, line(row)); err != nil {
			return err
		}
	}
	return nil
}

// Summary is the one-line view of an entity used in tables and filters.
type Summary struct {
	Type   string // human readable shape, e.g. "song station"
	Tag    string // wire tag, e.g. "sr"
	Key    string
	Name   string
	Detail string // artist, owner or similar secondary label
}

// Name fields in order of preference. Stations name the thing they are
// built from.
var (
	nameFields   = []string{"name", "albumName", "artistName", "trackName", "playlistName", "labelName"}
	detailFields = []string{"artist", "owner", "albumArtist", "label", "userName"}
)

// Summarize picks the display fields of e from its wire form.
func Summarize(e rdio.Entity) (Summary, error) {
	fields, err := Fields(e)
	if err != nil {
		return Summary{}, err
	}

	tag, _ := fields[rdio.TagField].(string)
	shape, _ := rdio.ShapeName(tag)
	s := Summary{
		Type: humanize(shape),
		Tag:  tag,
		Key:  e.EntityKey(),
	}

	s.Name = firstString(fields, nameFields)
	if s.Name == "" {
		first, _ := fields["firstName"].(string)
		last, _ := fields["lastName"].(string)
		s.Name = strings.TrimSpace(first + " " + last)
	}
	s.Detail = firstString(fields, detailFields)

	return s, nil
}

// Fields returns the wire form of e, including its "type" tag, as a
// generic map.
func Fields(e rdio.Entity) (map[string]any, error) {
	b, err := rdio.MarshalEntity(e)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func firstString(fields map[string]any, names []string) string {
	for _, name := range names {
		if s, ok := fields[name].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// humanize splits a Go type name into lower-case words:
// "HeavyRotationUserStation" becomes "heavy rotation user station".
func humanize(name string) string {
	var words []string
	start := 0
	runes := []rune(name)
	for i := 1; i < len(runes); i++ {
		if unicode.IsUpper(runes[i]) && !unicode.IsUpper(runes[i-1]) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if len(runes) > 0 {
		words = append(words, string(runes[start:]))
	}
	return cases.Lower(language.English).String(strings.Join(words, " "))
}
