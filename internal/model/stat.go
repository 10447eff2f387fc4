package model

import (
	"strconv"
	"strings"
)

// StatType - вид атрибута, на который влияет предмет.
// Набор открытый: каталог может объявлять собственные типы.
type StatType string

// Known stat types.
const (
	StatDamage     StatType = "DAMAGE"
	StatBowDamage  StatType = "BOW_DAMAGE"
	StatHandDamage StatType = "HAND_DAMAGE"
	StatCritDamage StatType = "CRIT_DAMAGE"
	StatCritChance StatType = "CRIT_CHANCE"
	StatArmor      StatType = "ARMOR"
	StatSpeed      StatType = "SPEED"
	StatJump       StatType = "JUMP"
)

// CaptionKey returns the localization key used to display this stat ("stat.damage").
func (t StatType) CaptionKey() string {
	return "stat." + strings.ToLower(string(t))
}

// Operation определяет знак, с которым значение стата входит в сумму.
type Operation int8

const (
	OperationPlus Operation = iota
	OperationMinus
)

// String returns "+" or "-".
func (o Operation) String() string {
	if o == OperationMinus {
		return "-"
	}
	return "+"
}

// Bound selects the low or high end of a stat range.
type Bound int8

const (
	BoundMin Bound = iota
	BoundMax
)

// Stat - модификатор одного атрибута, прикреплённый к предмету.
//
// Если Ranged == false, Max не используется: верхняя граница равна Min.
type Stat struct {
	Type       StatType
	Operation  Operation
	Percentage bool
	Ranged     bool
	Min        float64
	Max        float64
}

// Value returns the signed effective value at the given bound.
// Non-ranged stats report Min for both bounds.
func (s Stat) Value(b Bound) float64 {
	v := s.Min
	if b == BoundMax && s.Ranged {
		v = s.Max
	}
	if s.Operation == OperationMinus {
		return -v
	}
	return v
}

// DisplayValue formats the stat the way item lore shows it: "+5", "-10%", "+3-5%".
func (s Stat) DisplayValue() string {
	var b strings.Builder
	b.WriteString(s.Operation.String())
	b.WriteString(formatNumber(s.Min))
	if s.Ranged {
		b.WriteByte('-')
		b.WriteString(formatNumber(s.Max))
	}
	if s.Percentage {
		b.WriteByte('%')
	}
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
