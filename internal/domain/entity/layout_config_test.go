package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/bnema/sash/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Variants(t *testing.T) {
	size, err := entity.Normalize(entity.Scalar{Value: "40%"})
	require.NoError(t, err)
	assert.Equal(t, entity.Percent(40), size.Size)
	assert.Equal(t, entity.PositionNone, size.Position)

	pos, err := entity.Normalize(entity.Scalar{Value: "bottom"})
	require.NoError(t, err)
	assert.Equal(t, entity.PositionBottom, pos.Position)
	assert.False(t, pos.Size.IsSet())

	pair, err := entity.Normalize(entity.Pair{entity.Scalar{Value: 0.3}, entity.Scalar{Value: 0.7}})
	require.NoError(t, err)
	assert.Len(t, pair.Children, 2)
	assert.False(t, pair.Size.IsSet())

	full, err := entity.Normalize(&entity.LayoutConfig{ID: "x", Size: entity.Pixels(100)})
	require.NoError(t, err)
	assert.Equal(t, entity.NodeID("x"), full.ID)

	_, err = entity.Normalize(&entity.LayoutConfig{Children: []entity.LayoutEntry{entity.Scalar{Value: 0.5}}})
	assert.ErrorIs(t, err, entity.ErrInvalidConfig)

	_, err = entity.Normalize(entity.Scalar{Value: "sideways"})
	assert.ErrorIs(t, err, entity.ErrInvalidSize)
}

func TestDecodeLayoutEntry_FromJSON(t *testing.T) {
	doc := `{
		"id": "root",
		"theme": "dark",
		"children": [
			{"id": "nav", "position": "left", "size": "25%", "minWidth": 120, "title": "Navigator"},
			[0.6, {"id": "log", "resizable": false}]
		]
	}`
	var raw any
	require.NoError(t, json.Unmarshal([]byte(doc), &raw))

	entry, err := entity.DecodeLayoutEntry(raw)
	require.NoError(t, err)
	cfg, err := entity.Normalize(entry)
	require.NoError(t, err)

	assert.Equal(t, entity.NodeID("root"), cfg.ID)
	assert.Equal(t, "dark", cfg.Store["theme"])
	require.Len(t, cfg.Children, 2)

	nav, err := entity.Normalize(cfg.Children[0])
	require.NoError(t, err)
	assert.Equal(t, entity.PositionLeft, nav.Position)
	assert.Equal(t, entity.Percent(25), nav.Size)
	assert.Equal(t, 120.0, nav.MinWidth)
	assert.Equal(t, "Navigator", nav.Store.String(entity.StoreTitle))

	_, isPair := cfg.Children[1].(entity.Pair)
	assert.True(t, isPair, "nested array should decode as a pair")
}

func TestDecodeLayoutEntry_Errors(t *testing.T) {
	_, err := entity.DecodeLayoutEntry([]any{0.5})
	assert.ErrorIs(t, err, entity.ErrInvalidConfig)

	_, err = entity.DecodeLayoutEntry(map[string]any{"position": 3})
	assert.ErrorIs(t, err, entity.ErrInvalidPosition)

	_, err = entity.DecodeLayoutEntry(map[string]any{"minWidth": "wide"})
	assert.ErrorIs(t, err, entity.ErrInvalidConfig)

	_, err = entity.DecodeLayoutEntry(map[string]any{"children": []any{1.0, 2.0, 3.0}})
	assert.ErrorIs(t, err, entity.ErrInvalidConfig)

	_, err = entity.DecodeLayoutEntry(struct{}{})
	assert.ErrorIs(t, err, entity.ErrInvalidConfig)
}

func TestLayoutConfig_MapRoundTrip(t *testing.T) {
	cfg := entity.LayoutConfig{
		ID:    "root",
		Store: entity.Store{"title": "main", "id": "shadowed"},
		Children: []entity.LayoutEntry{
			&entity.LayoutConfig{ID: "a", Position: entity.PositionTop, Size: entity.Percent(30)},
			&entity.LayoutConfig{ID: "b", Position: entity.PositionBottom, MinHeight: 50},
		},
	}

	m := cfg.Map()
	assert.Equal(t, "root", m["id"])
	assert.Equal(t, "main", m["title"])

	entry, err := entity.DecodeLayoutEntry(m)
	require.NoError(t, err)
	back, err := entity.Normalize(entry)
	require.NoError(t, err)
	require.Len(t, back.Children, 2)

	a, err := entity.Normalize(back.Children[0])
	require.NoError(t, err)
	assert.Equal(t, entity.Percent(30), a.Size)
	assert.Equal(t, entity.PositionTop, a.Position)

	b, err := entity.Normalize(back.Children[1])
	require.NoError(t, err)
	assert.Equal(t, 50.0, b.MinHeight)
}

func TestStore_Flag(t *testing.T) {
	s := entity.Store{"resizable": false, "droppable": "true", "other": 3}
	assert.False(t, s.Flag(entity.StoreResizable, true))
	assert.True(t, s.Flag(entity.StoreDroppable, false))
	assert.True(t, s.Flag("other", true))
	assert.True(t, entity.Store(nil).Flag(entity.StoreResizable, true))
	assert.NotNil(t, entity.Store(nil).Clone())
}
