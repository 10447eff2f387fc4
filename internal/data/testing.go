package data

import (
	"context"
	"fmt"
)

// NewTestRegistry returns a registry loaded from doc.
// Intended for tests from other packages that need a catalog.
func NewTestRegistry(doc *Document) *Registry {
	r := NewRegistry()
	if _, err := r.Reload(context.Background(), DocumentSource{Label: "test", Doc: doc}); err != nil {
		panic(fmt.Sprintf("loading test catalog: %v", err))
	}
	return r
}

// Int32 returns a pointer to v, for optional config fields.
func Int32(v int32) *int32 { return &v }

// Bool returns a pointer to v, for optional config fields.
func Bool(v bool) *bool { return &v }
