package model

import "strings"

// NoLevel - сентинел "уровень не требуется".
const NoLevel int32 = -1

// Classified is implemented by everything gated by actor level and class:
// custom items and pets.
type Classified interface {
	// Level returns the required actor level or NoLevel.
	Level() int32
	// Classes returns allowed actor classes; nil means unrestricted.
	Classes() []string
}

// ClassesString formats the allowed classes for captions ("Warrior, Paladin").
func ClassesString(c Classified) string {
	return strings.Join(c.Classes(), ", ")
}

// ItemParams - входные данные для построения CustomItem из конфигурации.
type ItemParams struct {
	Name        string
	Texture     string
	Level       int32
	Classes     []string
	Unbreakable bool
	Drop        bool
	StatsHidden bool
	Lore        []string
	LeftClick   string
	RightClick  string
	Stats       []Stat
}

// CustomItem - предмет каталога. Неизменяем после загрузки.
type CustomItem struct {
	id          string
	name        string
	texture     string
	level       int32
	classes     []string
	unbreakable bool
	drop        bool
	statsHidden bool
	lore        []string
	leftClick   string
	rightClick  string
	stats       []Stat
}

// NewCustomItem builds an item from params. Slices are copied.
// A stat type declared twice keeps the position of its first occurrence
// and the value of the last one.
func NewCustomItem(id string, p ItemParams) *CustomItem {
	item := &CustomItem{
		id:          id,
		name:        p.Name,
		texture:     p.Texture,
		level:       p.Level,
		unbreakable: p.Unbreakable,
		drop:        p.Drop,
		statsHidden: p.StatsHidden,
		leftClick:   p.LeftClick,
		rightClick:  p.RightClick,
	}
	if len(p.Classes) > 0 {
		item.classes = append([]string{}, p.Classes...)
	}
	if len(p.Lore) > 0 {
		item.lore = append([]string{}, p.Lore...)
	}

	index := make(map[StatType]int, len(p.Stats))
	for _, s := range p.Stats {
		if i, ok := index[s.Type]; ok {
			item.stats[i] = s
			continue
		}
		index[s.Type] = len(item.stats)
		item.stats = append(item.stats, s)
	}

	return item
}

func (i *CustomItem) ID() string                 { return i.id }
func (i *CustomItem) Name() string               { return i.name }
func (i *CustomItem) Texture() string            { return i.texture }
func (i *CustomItem) Level() int32               { return i.level }
func (i *CustomItem) Classes() []string          { return i.classes }
func (i *CustomItem) IsUnbreakable() bool        { return i.unbreakable }
func (i *CustomItem) IsDrop() bool               { return i.drop }
func (i *CustomItem) IsStatsHidden() bool        { return i.statsHidden }
func (i *CustomItem) Lore() []string             { return i.lore }
func (i *CustomItem) LeftClickCaption() string   { return i.leftClick }
func (i *CustomItem) RightClickCaption() string  { return i.rightClick }
func (i *CustomItem) HasLeftClickCaption() bool  { return i.leftClick != "" }
func (i *CustomItem) HasRightClickCaption() bool { return i.rightClick != "" }

// Stats returns the item's stats in declaration order.
func (i *CustomItem) Stats() []Stat { return i.stats }

// Stat returns the stat of the given type, or false if the item has none.
func (i *CustomItem) Stat(t StatType) (Stat, bool) {
	for _, s := range i.stats {
		if s.Type == t {
			return s, true
		}
	}
	return Stat{}, false
}
