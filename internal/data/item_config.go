package data

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/udisondev/rpginventory/internal/lang"
	"github.com/udisondev/rpginventory/internal/model"
)

// Document - корень конфигурации каталога (items.yml).
type Document struct {
	Items map[string]ItemConfig `yaml:"items"`
	Pets  map[string]PetConfig  `yaml:"pets,omitempty"`
}

// ItemConfig - описание одного предмета в конфигурации.
type ItemConfig struct {
	Name        string          `yaml:"name"`
	Texture     string          `yaml:"texture"`
	Level       *int32          `yaml:"level,omitempty"`
	Classes     []string        `yaml:"classes,omitempty"`
	Unbreakable bool            `yaml:"unbreakable,omitempty"`
	Drop        *bool           `yaml:"drop,omitempty"`
	HideStats   bool            `yaml:"hide-stats,omitempty"`
	Lore        []string        `yaml:"lore,omitempty"`
	Abilities   AbilitiesConfig `yaml:"abilities,omitempty"`
	Stats       []string        `yaml:"stats,omitempty"`
}

// AbilitiesConfig holds click actions of an item.
type AbilitiesConfig struct {
	LeftClick  *AbilityConfig `yaml:"left-click,omitempty"`
	RightClick *AbilityConfig `yaml:"right-click,omitempty"`
}

// AbilityConfig - действие по клику. Для лора важна только подпись.
type AbilityConfig struct {
	Caption string `yaml:"caption"`
}

// PetConfig - питомец; в движке участвует только в проверке допуска.
type PetConfig struct {
	Name    string   `yaml:"name"`
	Level   *int32   `yaml:"level,omitempty"`
	Classes []string `yaml:"classes,omitempty"`
}

var (
	statTypePattern  = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	statValuePattern = regexp.MustCompile(`^([+-])?(\d+(?:\.\d+)?)(?:-(\d+(?:\.\d+)?))?(%)?$`)
)

// ParseStat parses a stat line: "TYPE [+|-]MIN[-MAX][%]".
//
//	"DAMAGE +5"        → +5 damage
//	"SPEED -10%"       → -10% speed
//	"CRIT_CHANCE 3-5%" → +3..5% crit chance
func ParseStat(line string) (model.Stat, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return model.Stat{}, fmt.Errorf("%w: %q: want \"TYPE VALUE\"", ErrInvalidStat, line)
	}

	typ := strings.ToUpper(fields[0])
	if !statTypePattern.MatchString(typ) {
		return model.Stat{}, fmt.Errorf("%w: %q: bad type %q", ErrInvalidStat, line, fields[0])
	}

	m := statValuePattern.FindStringSubmatch(fields[1])
	if m == nil {
		return model.Stat{}, fmt.Errorf("%w: %q: bad value %q", ErrInvalidStat, line, fields[1])
	}

	stat := model.Stat{
		Type:       model.StatType(typ),
		Percentage: m[4] == "%",
	}
	if m[1] == "-" {
		stat.Operation = model.OperationMinus
	}

	// Регулярка гарантирует корректные числа.
	stat.Min, _ = strconv.ParseFloat(m[2], 64)
	stat.Max = stat.Min
	if m[3] != "" {
		stat.Ranged = true
		stat.Max, _ = strconv.ParseFloat(m[3], 64)
		if stat.Max < stat.Min {
			return model.Stat{}, fmt.Errorf("%w: %q: max below min", ErrInvalidStat, line)
		}
	}

	return stat, nil
}

// buildItem converts a config entry into a CustomItem.
func buildItem(id string, cfg ItemConfig) (*model.CustomItem, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: empty id", ErrInvalidItem)
	}
	if cfg.Texture == "" {
		return nil, fmt.Errorf("%w: item %s: texture is required", ErrInvalidItem, id)
	}

	stats := make([]model.Stat, 0, len(cfg.Stats))
	for _, line := range cfg.Stats {
		s, err := ParseStat(line)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", id, err)
		}
		stats = append(stats, s)
	}

	lore := make([]string, len(cfg.Lore))
	for i, line := range cfg.Lore {
		lore[i] = lang.Colorize(line)
	}

	p := model.ItemParams{
		Name:        lang.Colorize(cfg.Name),
		Texture:     cfg.Texture,
		Level:       levelOrNone(cfg.Level),
		Classes:     cfg.Classes,
		Unbreakable: cfg.Unbreakable,
		Drop:        cfg.Drop == nil || *cfg.Drop,
		StatsHidden: cfg.HideStats,
		Lore:        lore,
		Stats:       stats,
	}
	if cfg.Abilities.LeftClick != nil {
		p.LeftClick = lang.Colorize(cfg.Abilities.LeftClick.Caption)
	}
	if cfg.Abilities.RightClick != nil {
		p.RightClick = lang.Colorize(cfg.Abilities.RightClick.Caption)
	}
	return model.NewCustomItem(id, p), nil
}

func buildPet(id string, cfg PetConfig) (*model.Pet, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: empty pet id", ErrInvalidItem)
	}
	return model.NewPet(id, cfg.Name, levelOrNone(cfg.Level), cfg.Classes), nil
}

func levelOrNone(level *int32) int32 {
	if level == nil || *level < 0 {
		return model.NoLevel
	}
	return *level
}
