package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/bnema/sash/internal/application/port"
	"github.com/bnema/sash/internal/domain/entity"
)

// GetConfigSchemaUseCase lists the configuration keys with their metadata.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput filters the listing.
type GetConfigSchemaInput struct {
	// Section keeps only keys of one section, case-insensitively.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys     []entity.ConfigKeyInfo
	Sections []string
}

// Execute returns the keys, sorted by key, and the sections they belong to.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	all := uc.provider.GetSchema()

	out := &GetConfigSchemaOutput{Keys: make([]entity.ConfigKeyInfo, 0, len(all))}
	seen := make(map[string]bool)
	for _, key := range all {
		if input.Section != "" && !strings.EqualFold(key.Section, input.Section) {
			continue
		}
		out.Keys = append(out.Keys, key)
		if !seen[key.Section] {
			seen[key.Section] = true
			out.Sections = append(out.Sections, key.Section)
		}
	}
	sort.Slice(out.Keys, func(i, j int) bool { return out.Keys[i].Key < out.Keys[j].Key })
	sort.Strings(out.Sections)
	return out, nil
}
