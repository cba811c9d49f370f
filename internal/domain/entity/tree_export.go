package entity

// Export converts the tree back into the configuration shape accepted by
// NewTree. Leading children carry their size as a fraction of the parent;
// trailing children only carry their position and derive the rest.
func (t *Tree) Export() LayoutConfig {
	return t.export(t.root)
}

func (t *Tree) export(h handle) LayoutConfig {
	n := &t.nodes[h]
	cfg := LayoutConfig{
		ID:        n.id,
		MinWidth:  n.minWidth,
		MinHeight: n.minHeight,
		Store:     n.store.Clone(),
	}
	if n.parent != noHandle {
		cfg.Position = n.position
		if n.position.IsLeading() {
			axis := n.position.Axis()
			if parentExtent := t.nodes[n.parent].rect.Extent(axis); parentExtent > 0 {
				cfg.Size = Fraction(n.rect.Extent(axis) / parentExtent)
			}
		}
	}
	if !n.isLeaf() {
		first := t.export(n.children[0])
		second := t.export(n.children[1])
		cfg.Children = []LayoutEntry{&first, &second}
	}
	return cfg
}
