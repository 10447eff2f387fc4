package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/rpginventory/internal/data"
)

const (
	kindItem = "item"
	kindPet  = "pet"
)

// ItemRepository хранит определения предметов и питомцев в БД.
// Каждое определение - YAML-документ в колонке definition.
// Реализует data.Source.
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository создаёт новый ItemRepository.
func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

// Name implements data.Source.
func (r *ItemRepository) Name() string { return "postgres:custom_items" }

// Load reads every definition into a catalog document.
func (r *ItemRepository) Load(ctx context.Context) (*data.Document, error) {
	rows, err := r.db.Query(ctx, `SELECT kind, id, definition FROM custom_items ORDER BY kind, id`)
	if err != nil {
		return nil, fmt.Errorf("querying custom items: %w", err)
	}
	defer rows.Close()

	doc := &data.Document{
		Items: make(map[string]data.ItemConfig),
		Pets:  make(map[string]data.PetConfig),
	}

	for rows.Next() {
		var kind, id, definition string
		if err := rows.Scan(&kind, &id, &definition); err != nil {
			return nil, fmt.Errorf("scanning custom item row: %w", err)
		}

		switch kind {
		case kindItem:
			var cfg data.ItemConfig
			if err := yaml.Unmarshal([]byte(definition), &cfg); err != nil {
				return nil, fmt.Errorf("parsing item %s: %w", id, err)
			}
			doc.Items[id] = cfg
		case kindPet:
			var cfg data.PetConfig
			if err := yaml.Unmarshal([]byte(definition), &cfg); err != nil {
				return nil, fmt.Errorf("parsing pet %s: %w", id, err)
			}
			doc.Pets[id] = cfg
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating custom item rows: %w", err)
	}

	return doc, nil
}

// SaveItem inserts or replaces one item definition.
func (r *ItemRepository) SaveItem(ctx context.Context, id string, cfg data.ItemConfig) error {
	return r.save(ctx, r.db, kindItem, id, cfg)
}

// SavePet inserts or replaces one pet definition.
func (r *ItemRepository) SavePet(ctx context.Context, id string, cfg data.PetConfig) error {
	return r.save(ctx, r.db, kindPet, id, cfg)
}

// DeleteItem removes an item definition. Missing ids are not an error.
func (r *ItemRepository) DeleteItem(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM custom_items WHERE kind = $1 AND id = $2`, kindItem, id); err != nil {
		return fmt.Errorf("deleting item %s: %w", id, err)
	}
	return nil
}

// Import replaces the whole table content with doc in one transaction.
func (r *ItemRepository) Import(ctx context.Context, doc *data.Document) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `DELETE FROM custom_items`); err != nil {
		return fmt.Errorf("clearing custom items: %w", err)
	}
	for id, cfg := range doc.Items {
		if err := r.save(ctx, tx, kindItem, id, cfg); err != nil {
			return err
		}
	}
	for id, cfg := range doc.Pets {
		if err := r.save(ctx, tx, kindPet, id, cfg); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}

	slog.Info("custom items imported", "items", len(doc.Items), "pets", len(doc.Pets))
	return nil
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (r *ItemRepository) save(ctx context.Context, ex execer, kind, id string, cfg any) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding %s %s: %w", kind, id, err)
	}

	_, err = ex.Exec(ctx, `
		INSERT INTO custom_items (kind, id, definition, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (kind, id) DO UPDATE
		SET definition = EXCLUDED.definition, updated_at = EXCLUDED.updated_at
	`, kind, id, string(raw))
	if err != nil {
		return fmt.Errorf("saving %s %s: %w", kind, id, err)
	}
	return nil
}
