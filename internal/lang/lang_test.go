package lang

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"&cRed", "§cRed"},
		{"&CRed", "§cRed"},
		{"&7Level: &f10", "§7Level: §f10"},
		{"Salt & pepper", "Salt & pepper"},
		{"trailing &", "trailing &"},
		{"&l&nBold", "§l§nBold"},
		{"&zNope", "&zNope"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Colorize(tt.in))
		})
	}
}

func TestDefault_CoversEngineKeys(t *testing.T) {
	l := Default()
	for _, key := range []string{
		"error.item.level",
		"error.item.class",
		"item.unbreakable",
		"item.nodrop",
		"item.level",
		"item.class",
		"item.left-click",
		"item.right-click",
		"item.hide",
		"stat.damage",
		"stat.speed",
	} {
		assert.True(t, l.Has(key), key)
	}
}

func TestLanguage_Caption(t *testing.T) {
	l := Default()

	assert.Equal(t, "§7Required level: §f10", l.Caption("item.level", int32(10)))
	assert.Equal(t, "§7Damage: §f+5", l.Caption("stat.damage", "+5"))
	assert.Equal(t, "§9Unbreakable", l.Caption("item.unbreakable"))
	assert.Equal(t, "no.such.key", l.Caption("no.such.key", 1))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ru.yaml")
	content := "captions:\n  item.unbreakable: \"&9Неразрушимый\"\n  stat.mana: \"Мана: %s\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "§9Неразрушимый", l.Caption("item.unbreakable"))
	assert.Equal(t, "Мана: +3", l.Caption("stat.mana", "+3"))
	// Остальные ключи берутся из встроенных
	assert.True(t, l.Has("item.nodrop"))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.True(t, l.Has("item.level"))

	l, err = Load("")
	require.NoError(t, err)
	assert.True(t, l.Has("item.level"))
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("captions: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
