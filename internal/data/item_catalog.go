package data

import (
	"encoding/hex"
	"fmt"
	"slices"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/rpginventory/internal/model"
)

// Catalog - неизменяемый снимок каталога предметов.
// Безопасен для конкурентного чтения без блокировок.
type Catalog struct {
	items       map[string]*model.CustomItem
	ids         []string
	pets        map[string]*model.Pet
	fingerprint string
}

// EmptyCatalog returns a catalog without items.
func EmptyCatalog() *Catalog {
	return &Catalog{
		items: map[string]*model.CustomItem{},
		pets:  map[string]*model.Pet{},
	}
}

// Parse builds a catalog from a configuration document.
// An empty items section yields an empty catalog; deciding whether that is
// acceptable is up to the caller.
func Parse(doc *Document) (*Catalog, error) {
	if doc == nil || doc.Items == nil {
		return nil, ErrMissingItems
	}

	c := &Catalog{
		items: make(map[string]*model.CustomItem, len(doc.Items)),
		ids:   make([]string, 0, len(doc.Items)),
		pets:  make(map[string]*model.Pet, len(doc.Pets)),
	}

	for id, cfg := range doc.Items {
		item, err := buildItem(id, cfg)
		if err != nil {
			return nil, err
		}
		c.items[id] = item
		c.ids = append(c.ids, id)
	}
	slices.Sort(c.ids)

	for id, cfg := range doc.Pets {
		pet, err := buildPet(id, cfg)
		if err != nil {
			return nil, err
		}
		c.pets[id] = pet
	}

	fp, err := fingerprint(doc)
	if err != nil {
		return nil, err
	}
	c.fingerprint = fp

	return c, nil
}

// fingerprint hashes the canonical YAML form of the document.
// yaml.v3 sorts map keys, so equal documents hash equally.
func fingerprint(doc *Document) (string, error) {
	raw, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding catalog for fingerprint: %w", err)
	}
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// Get returns the item by id, or nil.
func (c *Catalog) Get(id string) *model.CustomItem {
	return c.items[id]
}

// List returns all item ids in ascending order.
func (c *Catalog) List() []string {
	return slices.Clone(c.ids)
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// PetCount returns the number of pets.
func (c *Catalog) PetCount() int { return len(c.pets) }

// Fingerprint identifies the configuration the catalog was built from.
func (c *Catalog) Fingerprint() string { return c.fingerprint }

// FromStack resolves the custom item whose id is tagged on the stack.
func (c *Catalog) FromStack(s model.ItemStack) *model.CustomItem {
	if !model.IsCustomItem(s) {
		return nil
	}
	return c.items[s.Tag(model.ItemTag)]
}

// Pet returns the pet by id, or nil.
func (c *Catalog) Pet(id string) *model.Pet {
	return c.pets[id]
}

// PetFromStack resolves the pet whose id is tagged on the stack.
func (c *Catalog) PetFromStack(s model.ItemStack) *model.Pet {
	if !model.IsPetItem(s) {
		return nil
	}
	return c.pets[s.Tag(model.PetTag)]
}

// Stack returns a display stack for the item, tagged with its id.
// Unknown ids yield an air stack. Lore is left empty.
func (c *Catalog) Stack(id string) *model.Stack {
	item := c.items[id]
	if item == nil {
		return model.NewStack(model.MaterialAir)
	}
	s := model.NewStack(item.Texture()).WithTag(model.ItemTag, item.ID())
	s.Name = item.Name()
	s.Unbreakable = item.IsUnbreakable()
	return s
}
