// Package layoutfile reads and writes layout documents: the declarative
// split-tree configuration stored as TOML or JSON, optionally carrying the
// container size under "width" and "height".
package layoutfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bnema/sash/internal/domain/entity"
)

// Format is the on-disk encoding of a layout document.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

const (
	keyWidth  = "width"
	keyHeight = "height"
)

// ErrUnsupportedFormat is returned for file extensions other than .toml and .json.
var ErrUnsupportedFormat = errors.New("unsupported layout format")

// Document is a decoded layout document.
type Document struct {
	// Name is the file name without extension, or empty for in-memory documents.
	Name string
	// Width and Height are the container size; zero when the document does not say.
	Width  float64
	Height float64
	Root   entity.LayoutEntry
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}
	doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return doc, nil
}

// Parse decodes a document from data.
func Parse(data []byte, format Format) (*Document, error) {
	var raw any
	switch format {
	case FormatTOML:
		var m map[string]any
		if _, err := toml.Decode(string(data), &m); err != nil {
			return nil, fmt.Errorf("failed to decode TOML: %w", err)
		}
		raw = m
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to decode JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return fromRaw(raw)
}

func fromRaw(raw any) (*Document, error) {
	doc := &Document{}
	if m, ok := raw.(map[string]any); ok {
		rest := make(map[string]any, len(m))
		for k, v := range m {
			rest[k] = v
		}
		var err error
		if doc.Width, err = takeDimension(rest, keyWidth); err != nil {
			return nil, err
		}
		if doc.Height, err = takeDimension(rest, keyHeight); err != nil {
			return nil, err
		}
		raw = rest
	}

	root, err := entity.DecodeLayoutEntry(raw)
	if err != nil {
		return nil, err
	}
	doc.Root = root
	return doc, nil
}

func takeDimension(m map[string]any, key string) (float64, error) {
	v, ok := m[key]
	if !ok {
		return 0, nil
	}
	delete(m, key)

	var f float64
	switch n := v.(type) {
	case int64:
		f = float64(n)
	case int:
		f = float64(n)
	case float64:
		f = n
	default:
		return 0, fmt.Errorf("%w: %s must be a number, got %T", entity.ErrInvalidSize, key, v)
	}
	if !(f > 0) {
		return 0, fmt.Errorf("%w: %s must be positive, got %g", entity.ErrInvalidSize, key, f)
	}
	return f, nil
}

// Bounds returns the container rectangle of the document, falling back to
// fallback for each dimension the document leaves out.
func (d *Document) Bounds(fallback entity.Rect) entity.Rect {
	b := entity.Rect{Width: fallback.Width, Height: fallback.Height}
	if d.Width > 0 {
		b.Width = d.Width
	}
	if d.Height > 0 {
		b.Height = d.Height
	}
	return b
}

// Build compiles the document into a tree.
func (d *Document) Build(fallback entity.Rect, opts ...entity.TreeOption) (*entity.Tree, error) {
	return entity.NewTree(d.Root, d.Bounds(fallback), opts...)
}

// FromTree captures the tree as a document, bounds included.
func FromTree(tree *entity.Tree) *Document {
	cfg := tree.Export()
	bounds := tree.Bounds()
	return &Document{Width: bounds.Width, Height: bounds.Height, Root: &cfg}
}

// Encode writes the document to w.
func Encode(w io.Writer, doc *Document, format Format) error {
	cfg, err := entity.Normalize(doc.Root)
	if err != nil {
		return err
	}
	m := cfg.Map()
	if doc.Width > 0 {
		m[keyWidth] = doc.Width
	}
	if doc.Height > 0 {
		m[keyHeight] = doc.Height
	}

	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(m)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Save writes the document to path, choosing the format from the extension.
func Save(path string, doc *Document) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, doc, format); err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write layout %s: %w", path, err)
	}
	return nil
}

// Resolve turns a layout reference into a file path. A reference naming an
// existing file is used as is; otherwise dir/<ref>.toml and dir/<ref>.json
// are tried in that order.
func Resolve(ref, dir string) (string, error) {
	if _, err := os.Stat(ref); err == nil {
		return ref, nil
	}
	if filepath.Ext(ref) == "" && dir != "" {
		for _, ext := range []string{".toml", ".json"} {
			candidate := filepath.Join(dir, ref+ext)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("layout %q not found: %w", ref, os.ErrNotExist)
}
