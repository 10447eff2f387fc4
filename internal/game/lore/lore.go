// Package lore renders the descriptive lines of a custom item from the
// configured lore pattern.
//
// Pattern tokens are either directives (see the Token* constants) or literal
// lines. Directives expand into zero or more lines depending on the item;
// literal lines are copied after color-code expansion. Separators never
// repeat and never open or close the result.
package lore

import (
	"github.com/udisondev/rpginventory/internal/data"
	"github.com/udisondev/rpginventory/internal/lang"
	"github.com/udisondev/rpginventory/internal/model"
)

// Pattern directives.
const (
	TokenUnbreakable = "_UNBREAKABLE_"
	TokenDrop        = "_DROP_"
	TokenSeparator   = "_SEPARATOR_"
	TokenLevel       = "_LEVEL_"
	TokenClass       = "_CLASS_"
	TokenLore        = "_LORE_"
	TokenSkills      = "_SKILLS_"
	TokenStats       = "_STATS_"
)

// Captions - источник локализованных подписей.
type Captions interface {
	Caption(key string, args ...any) string
}

// Catalogs returns the active catalog snapshot.
type Catalogs interface {
	Current() *data.Catalog
}

// Renderer строит лор предмета по шаблону.
type Renderer struct {
	pattern   []string
	separator string
	captions  Captions
	catalogs  Catalogs
}

// NewRenderer creates a renderer. separator is colorized once here.
func NewRenderer(pattern []string, separator string, captions Captions, catalogs Catalogs) *Renderer {
	return &Renderer{
		pattern:   append([]string(nil), pattern...),
		separator: lang.Colorize(separator),
		captions:  captions,
		catalogs:  catalogs,
	}
}

// Separator returns the colorized separator line.
func (r *Renderer) Separator() string { return r.separator }

// Render expands the pattern for item. The result may be empty.
func (r *Renderer) Render(item *model.CustomItem) []string {
	b := builder{separator: r.separator, lines: make([]string, 0, len(r.pattern)+len(item.Stats()))}

	for _, token := range r.pattern {
		switch token {
		case TokenUnbreakable:
			if item.IsUnbreakable() {
				b.add(r.captions.Caption("item.unbreakable"))
			}
		case TokenDrop:
			if !item.IsDrop() {
				b.add(r.captions.Caption("item.nodrop"))
			}
		case TokenSeparator:
			b.addSeparator()
		case TokenLevel:
			if item.Level() != model.NoLevel {
				b.add(r.captions.Caption("item.level", item.Level()))
			}
		case TokenClass:
			if len(item.Classes()) > 0 {
				b.add(r.captions.Caption("item.class", model.ClassesString(item)))
			}
		case TokenLore:
			for _, line := range item.Lore() {
				b.add(line)
			}
		case TokenSkills:
			if item.HasLeftClickCaption() {
				b.add(r.captions.Caption("item.left-click", item.LeftClickCaption()))
			}
			if item.HasRightClickCaption() {
				b.add(r.captions.Caption("item.right-click", item.RightClickCaption()))
			}
		case TokenStats:
			if item.IsStatsHidden() {
				b.add(r.captions.Caption("item.hide"))
				continue
			}
			for _, s := range item.Stats() {
				b.add(r.captions.Caption(s.Type.CaptionKey(), s.DisplayValue()))
			}
		default:
			b.add(lang.Colorize(token))
		}
	}

	return b.finish()
}

// Stack returns the catalog stack for id with rendered lore.
// Unknown ids yield an air stack.
func (r *Renderer) Stack(id string) *model.Stack {
	cat := r.catalogs.Current()
	s := cat.Stack(id)
	if item := cat.Get(id); item != nil {
		s.Lore = r.Render(item)
	}
	return s
}

type builder struct {
	separator string
	lines     []string
	lastIsSep bool
}

// add appends a line. A line that reads exactly like the separator is
// treated as one.
func (b *builder) add(line string) {
	if line == b.separator {
		b.addSeparator()
		return
	}
	b.lines = append(b.lines, line)
	b.lastIsSep = false
}

func (b *builder) addSeparator() {
	if b.lastIsSep {
		return
	}
	b.lines = append(b.lines, b.separator)
	b.lastIsSep = true
}

func (b *builder) finish() []string {
	lines := b.lines
	if n := len(lines); n > 0 && lines[n-1] == b.separator {
		lines = lines[:n-1]
	}
	if len(lines) > 0 && lines[0] == b.separator {
		lines = lines[1:]
	}
	return lines
}
