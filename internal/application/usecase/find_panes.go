package usecase

import (
	"context"
	"strings"

	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/logging"
	"github.com/sahilm/fuzzy"
)

// PaneMatch is one search hit.
type PaneMatch struct {
	ID    entity.NodeID
	Label string
	// Indexes are the matched byte offsets in Label.
	Indexes []int
	Score   int
}

// FindPanesUseCase searches panes by title, falling back to their ID.
type FindPanesUseCase struct{}

// NewFindPanesUseCase creates a new FindPanesUseCase.
func NewFindPanesUseCase() *FindPanesUseCase {
	return &FindPanesUseCase{}
}

// paneSource adapts a pane list to fuzzy.Source.
type paneSource []entity.Sash

func (s paneSource) String(i int) string {
	return PaneLabel(s[i])
}

func (s paneSource) Len() int {
	return len(s)
}

// PaneLabel is the text a pane is shown and searched by.
func PaneLabel(pane entity.Sash) string {
	if title := pane.Store.String(entity.StoreTitle); title != "" {
		return title
	}
	return string(pane.ID)
}

// Find returns the panes of tree matching query, best first. An empty query
// lists every pane in tree order.
func (uc *FindPanesUseCase) Find(ctx context.Context, tree *entity.Tree, query string) []PaneMatch {
	if tree == nil {
		return nil
	}
	panes := paneSource(tree.Leaves())
	query = strings.TrimSpace(query)

	if query == "" {
		out := make([]PaneMatch, len(panes))
		for i, pane := range panes {
			out[i] = PaneMatch{ID: pane.ID, Label: PaneLabel(pane)}
		}
		return out
	}

	matches := fuzzy.FindFrom(query, panes)
	out := make([]PaneMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, PaneMatch{
			ID:      panes[m.Index].ID,
			Label:   m.Str,
			Indexes: m.MatchedIndexes,
			Score:   m.Score,
		})
	}
	logging.FromContext(ctx).Debug().Str("query", query).Int("matches", len(out)).Msg("pane search")
	return out
}
