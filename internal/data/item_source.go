package data

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Source поставляет конфигурацию каталога.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	Load(ctx context.Context) (*Document, error)
}

// FileSource reads the catalog from a single YAML file.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return s.Path }

// Load reads and decodes the file. A file without an items section is malformed.
func (s FileSource) Load(ctx context.Context) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := decodeFile(s.Path)
	if err != nil {
		return nil, err
	}
	if doc.Items == nil {
		return nil, ErrMissingItems
	}
	return doc, nil
}

// DirSource reads every *.yml / *.yaml file in a directory and merges them.
// Files are decoded in parallel. An id defined in two files is an error.
type DirSource struct {
	Dir string
}

func (s DirSource) Name() string { return s.Dir }

func (s DirSource) Load(ctx context.Context) (*Document, error) {
	var files []string
	for _, pattern := range []string{"*.yml", "*.yaml"} {
		matches, err := filepath.Glob(filepath.Join(s.Dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", s.Dir, err)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no item files in %s: %w", s.Dir, os.ErrNotExist)
	}
	slices.Sort(files)

	docs := make([]*Document, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := decodeFile(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &Document{
		Items: make(map[string]ItemConfig),
		Pets:  make(map[string]PetConfig),
	}
	for i, doc := range docs {
		for id, cfg := range doc.Items {
			if _, ok := merged.Items[id]; ok {
				return nil, fmt.Errorf("%w: %s (again in %s)", ErrDuplicateItem, id, files[i])
			}
			merged.Items[id] = cfg
		}
		for id, cfg := range doc.Pets {
			if _, ok := merged.Pets[id]; ok {
				return nil, fmt.Errorf("%w: pet %s (again in %s)", ErrDuplicateItem, id, files[i])
			}
			merged.Pets[id] = cfg
		}
	}

	return merged, nil
}

// DocumentSource serves an in-memory document.
type DocumentSource struct {
	Label string
	Doc   *Document
}

func (s DocumentSource) Name() string { return s.Label }

func (s DocumentSource) Load(ctx context.Context) (*Document, error) {
	if s.Doc == nil {
		return nil, ErrMissingItems
	}
	return s.Doc, ctx.Err()
}

func decodeFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &doc, nil
}
