package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sash/internal/application/port/mocks"
	"github.com/bnema/sash/internal/application/usecase"
	"github.com/bnema/sash/internal/domain/entity"
)

func schemaKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{Key: "resize.frame_rate", Type: "int", Default: "60", Range: "1-240", Section: "Resize"},
		{Key: "logging.level", Type: "string", Default: "info", Values: []string{"trace", "debug", "info"}, Section: "Logging"},
		{Key: "layout.min_pane_size", Type: "float64", Default: "10", Section: "Layout"},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns every key sorted", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(schemaKeys())

		result, err := usecase.NewGetConfigSchemaUseCase(provider).Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		require.Len(t, result.Keys, 3)
		assert.Equal(t, "layout.min_pane_size", result.Keys[0].Key)
		assert.Equal(t, "resize.frame_rate", result.Keys[2].Key)
		assert.Equal(t, []string{"Layout", "Logging", "Resize"}, result.Sections)
	})

	t.Run("filters by section", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(schemaKeys())

		result, err := usecase.NewGetConfigSchemaUseCase(provider).Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "logging"})

		require.NoError(t, err)
		require.Len(t, result.Keys, 1)
		assert.Equal(t, []string{"trace", "debug", "info"}, result.Keys[0].Values)
	})

	t.Run("empty provider", func(t *testing.T) {
		provider := mocks.NewMockConfigSchemaProvider(t)
		provider.EXPECT().GetSchema().Return(nil)

		result, err := usecase.NewGetConfigSchemaUseCase(provider).Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		assert.Empty(t, result.Keys)
		assert.Empty(t, result.Sections)
	})
}
