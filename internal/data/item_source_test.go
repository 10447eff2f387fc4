package data

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itemsYAML = `
items:
  sword_of_fire:
    name: "&cSword of Fire"
    texture: DIAMOND_SWORD
    level: 10
    classes: [Warrior, Paladin]
    unbreakable: true
    drop: false
    lore:
      - "&7Hot to the touch"
    abilities:
      right-click:
        caption: Flame wall
    stats:
      - DAMAGE +5
      - CRIT_CHANCE +3-5%
pets:
  wolf:
    name: Wolf
    level: 5
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource_Load(t *testing.T) {
	path := writeFile(t, t.TempDir(), "items.yml", itemsYAML)

	doc, err := FileSource{Path: path}.Load(context.Background())
	require.NoError(t, err)
	require.Contains(t, doc.Items, "sword_of_fire")
	assert.Contains(t, doc.Pets, "wolf")

	cat, err := Parse(doc)
	require.NoError(t, err)

	item := cat.Get("sword_of_fire")
	require.NotNil(t, item)
	assert.Equal(t, int32(10), item.Level())
	assert.Equal(t, []string{"Warrior", "Paladin"}, item.Classes())
	assert.False(t, item.IsDrop())
	assert.Equal(t, "Flame wall", item.RightClickCaption())
	assert.Len(t, item.Stats(), 2)
}

func TestFileSource_Errors(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	_, err := FileSource{Path: filepath.Join(dir, "missing.yml")}.Load(ctx)
	assert.ErrorIs(t, err, os.ErrNotExist)

	malformed := writeFile(t, dir, "bad.yml", "items: [unclosed")
	_, err = FileSource{Path: malformed}.Load(ctx)
	assert.Error(t, err)

	noItems := writeFile(t, dir, "empty.yml", "pets: {}\n")
	_, err = FileSource{Path: noItems}.Load(ctx)
	assert.ErrorIs(t, err, ErrMissingItems)
}

func TestDirSource_Load(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "weapons.yml", "items:\n  sword:\n    texture: IRON_SWORD\n")
	writeFile(t, dir, "armor.yaml", "items:\n  helmet:\n    texture: IRON_HELMET\npets:\n  wolf:\n    name: Wolf\n")
	writeFile(t, dir, "notes.txt", "ignored")

	doc, err := DirSource{Dir: dir}.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, doc.Items, 2)
	assert.Contains(t, doc.Items, "sword")
	assert.Contains(t, doc.Items, "helmet")
	assert.Contains(t, doc.Pets, "wolf")
}

func TestDirSource_DuplicateID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yml", "items:\n  sword:\n    texture: IRON_SWORD\n")
	writeFile(t, dir, "b.yml", "items:\n  sword:\n    texture: GOLD_SWORD\n")

	_, err := DirSource{Dir: dir}.Load(context.Background())
	assert.ErrorIs(t, err, ErrDuplicateItem)
}

func TestDirSource_Errors(t *testing.T) {
	_, err := DirSource{Dir: t.TempDir()}.Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	dir := t.TempDir()
	writeFile(t, dir, "good.yml", "items:\n  sword:\n    texture: IRON_SWORD\n")
	writeFile(t, dir, "bad.yml", "items: [")
	_, err = DirSource{Dir: dir}.Load(context.Background())
	assert.Error(t, err)
}
