package lang

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed en.yaml
var defaultCaptions []byte

// ColorChar - символ цвета, которым платформа размечает текст.
const ColorChar = '§'

const colorCodes = "0123456789AaBbCcDdEeFfKkLlMmNnOoRr"

type file struct {
	Captions map[string]string `yaml:"captions"`
}

// Language - таблица локализованных подписей.
type Language struct {
	captions map[string]string
}

// Default returns the built-in English captions.
func Default() *Language {
	var f file
	if err := yaml.Unmarshal(defaultCaptions, &f); err != nil {
		panic(fmt.Sprintf("embedded captions are broken: %v", err))
	}
	return &Language{captions: f.Captions}
}

// Load reads captions from path on top of the defaults.
// If the file doesn't exist, returns defaults.
func Load(path string) (*Language, error) {
	l := Default()
	if path == "" {
		return l, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return l, fmt.Errorf("reading language %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return l, fmt.Errorf("parsing language %s: %w", path, err)
	}
	for k, v := range f.Captions {
		l.captions[k] = v
	}
	return l, nil
}

// Caption returns the caption for key formatted with args and colorized.
// Unknown keys return the key itself so a missing translation stays visible.
func (l *Language) Caption(key string, args ...any) string {
	format, ok := l.captions[key]
	if !ok {
		return key
	}
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	return Colorize(format)
}

// Has reports whether the key is translated.
func (l *Language) Has(key string) bool {
	_, ok := l.captions[key]
	return ok
}

// Colorize replaces '&' color codes ("&c", "&l") with ColorChar.
// An '&' not followed by a code is left as is.
func Colorize(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if s[i] == '&' && i+1 < len(s) && strings.IndexByte(colorCodes, s[i+1]) >= 0 {
			b.WriteRune(ColorChar)
			b.WriteByte(s[i+1] | 0x20) // lower-case the code
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
