package catalog

// Resolver wraps a Catalog and always answers. Unknown ids resolve to the
// catalog's default entry, and a catalog that panics or lacks a default
// falls back to the built-in stock item. A broken cosmetic never stops a run.
type Resolver struct {
	cat   Catalog
	stock *Builtin
}

// NewResolver wraps c. A nil catalog resolves against the built-in one.
func NewResolver(c Catalog) *Resolver {
	stock := NewBuiltin()
	if c == nil {
		c = stock
	}
	return &Resolver{cat: c, stock: stock}
}

// lookup runs fn for id, then for DefaultID, treating a panic as a miss.
func lookup[T any](id string, fn func(string) (T, bool), stock func(string) (T, bool)) T {
	if v, ok := safeLookup(id, fn); ok {
		return v
	}
	if v, ok := safeLookup(DefaultID, fn); ok {
		return v
	}
	v, _ := stock(DefaultID)
	return v
}

func safeLookup[T any](id string, fn func(string) (T, bool)) (v T, ok bool) {
	defer func() {
		if recover() != nil {
			var zero T
			v, ok = zero, false
		}
	}()
	return fn(id)
}

// Model resolves a plane model.
func (r *Resolver) Model(id string) Model {
	return lookup(id, r.cat.Model, r.stock.Model)
}

// Skin resolves a skin.
func (r *Resolver) Skin(id string) Skin {
	return lookup(id, r.cat.Skin, r.stock.Skin)
}

// Trail resolves a trail.
func (r *Resolver) Trail(id string) Trail {
	return lookup(id, r.cat.Trail, r.stock.Trail)
}

// DeathEffect resolves a death effect.
func (r *Resolver) DeathEffect(id string) DeathEffect {
	return lookup(id, r.cat.DeathEffect, r.stock.DeathEffect)
}
