package data

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Registry владеет текущим снимком каталога.
// Перезагрузка строит новый Catalog целиком и атомарно подменяет указатель:
// читатели видят либо старый, либо новый снимок, но никогда не частичный.
type Registry struct {
	current atomic.Pointer[Catalog]
	mu      sync.Mutex // serializes reloads
}

// NewRegistry returns a registry holding an empty catalog.
func NewRegistry() *Registry {
	r := &Registry{}
	r.current.Store(EmptyCatalog())
	return r
}

// Current returns the active snapshot. Never nil.
func (r *Registry) Current() *Catalog {
	return r.current.Load()
}

// Reload loads src and installs the result. It reports whether the active
// catalog changed; an identical configuration keeps the current snapshot.
// Every failure is returned as *LoadError and leaves the current snapshot intact.
func (r *Registry) Reload(ctx context.Context, src Source) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cat, err := buildSafely(ctx, src)
	if err != nil {
		slog.Error("custom items load failed", "source", src.Name(), "err", err)
		return false, &LoadError{Source: src.Name(), Err: err}
	}
	if cat.Len() == 0 {
		slog.Error("custom items load failed", "source", src.Name(), "err", ErrEmptyCatalog)
		return false, &LoadError{Source: src.Name(), Err: ErrEmptyCatalog}
	}

	if cat.Fingerprint() == r.Current().Fingerprint() {
		slog.Debug("custom items unchanged", "source", src.Name(), "fingerprint", cat.Fingerprint())
		return false, nil
	}

	r.current.Store(cat)
	slog.Info("custom items loaded",
		"source", src.Name(),
		"count", cat.Len(),
		"pets", cat.PetCount())
	return true, nil
}

// buildSafely converts panics raised by a source into errors so that a broken
// configuration can't take the host down.
func buildSafely(ctx context.Context, src Source) (cat *Catalog, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			cat = nil
			err = fmt.Errorf("panic while loading: %v", rec)
		}
	}()

	doc, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrMissingItems
	}
	return Parse(doc)
}
