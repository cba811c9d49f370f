package layoutfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/sash/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_TOML(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "ide.toml"))
	require.NoError(t, err)
	assert.Equal(t, "ide", doc.Name)
	assert.Equal(t, 1200.0, doc.Width)
	assert.Equal(t, 800.0, doc.Height)

	tree, err := doc.Build(entity.Rect{Width: 1, Height: 1})
	require.NoError(t, err)
	require.NoError(t, tree.Validate())

	files, ok := tree.Node("files")
	require.True(t, ok)
	assert.Equal(t, entity.Rect{Width: 300, Height: 800}, files.Rect)
	assert.Equal(t, 120.0, files.MinWidth)
	assert.Equal(t, "Files", files.Store.String(entity.StoreTitle))

	editor, ok := tree.Node("editor")
	require.True(t, ok)
	assert.Equal(t, entity.Rect{Left: 300, Width: 900, Height: 600}, editor.Rect)

	terminal, ok := tree.Node("terminal")
	require.True(t, ok)
	assert.False(t, terminal.Store.Flag(entity.StoreResizable, true))
	assert.Equal(t, entity.PositionBottom, terminal.Position)
}

func TestLoad_CompactJSONUsesFallbackBounds(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "compact.json"))
	require.NoError(t, err)
	assert.Zero(t, doc.Width)

	tree, err := doc.Build(entity.Rect{Width: 1000, Height: 500})
	require.NoError(t, err)
	log, ok := tree.Node("log")
	require.True(t, ok)
	assert.Equal(t, entity.Rect{Left: 300, Top: 250, Width: 700, Height: 250}, log.Rect)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("not = [valid"), FormatTOML)
	assert.Error(t, err)

	_, err = Parse([]byte(`{"width": "wide"}`), FormatJSON)
	assert.ErrorIs(t, err, entity.ErrInvalidSize)

	_, err = Parse([]byte(`{"width": -5}`), FormatJSON)
	assert.ErrorIs(t, err, entity.ErrInvalidSize)

	_, err = Parse([]byte(`{"children": [1]}`), FormatJSON)
	assert.ErrorIs(t, err, entity.ErrInvalidConfig)

	_, err = Parse([]byte(`{}`), Format("yaml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load("layout.yaml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	src, err := Load(filepath.Join("testdata", "ide.toml"))
	require.NoError(t, err)
	tree, err := src.Build(entity.Rect{})
	require.NoError(t, err)

	start, err := tree.PairExtents("root")
	require.NoError(t, err)
	_, err = tree.ResizeSiblingPair("root", start, 60)
	require.NoError(t, err)

	for _, name := range []string{"out.toml", "out.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, FromTree(tree)))

			doc, err := Load(path)
			require.NoError(t, err)
			rebuilt, err := doc.Build(entity.Rect{})
			require.NoError(t, err)

			assert.Equal(t, tree.IDs(), rebuilt.IDs())
			for _, leaf := range tree.Leaves() {
				got, ok := rebuilt.Node(leaf.ID)
				require.True(t, ok)
				assert.True(t, got.Rect.ApproxEqual(leaf.Rect, 1e-6), "%s: %+v vs %+v", leaf.ID, got.Rect, leaf.Rect)
				assert.Equal(t, leaf.Store.String(entity.StoreTitle), got.Store.String(entity.StoreTitle))
			}
		})
	}
}

func TestEncode_JSONCarriesBounds(t *testing.T) {
	doc := &Document{Width: 640, Height: 480, Root: entity.Pair{entity.Scalar{Value: "left"}, nil}}
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc, FormatJSON))
	out := buf.String()
	assert.Contains(t, out, `"width": 640`)
	assert.Contains(t, out, `"position": "left"`)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "work.json"), []byte(`{}`), 0o600))

	got, err := Resolve("work", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "work.json"), got)

	direct := filepath.Join("testdata", "ide.toml")
	got, err = Resolve(direct, dir)
	require.NoError(t, err)
	assert.Equal(t, direct, got)

	_, err = Resolve("nope", dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSchema(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, schemaID)
	for _, want := range []string{`"children"`, `"position"`, `"bottom"`, `"minWidth"`} {
		assert.True(t, strings.Contains(s, want), "schema lacks %s", want)
	}
}
