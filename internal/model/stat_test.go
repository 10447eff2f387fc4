package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStat_Value(t *testing.T) {
	tests := []struct {
		name    string
		stat    Stat
		wantMin float64
		wantMax float64
	}{
		{
			name:    "flat plus",
			stat:    Stat{Type: StatDamage, Min: 5},
			wantMin: 5,
			wantMax: 5,
		},
		{
			name:    "flat minus",
			stat:    Stat{Type: StatDamage, Operation: OperationMinus, Min: 5},
			wantMin: -5,
			wantMax: -5,
		},
		{
			// Max игнорируется без Ranged
			name:    "non-ranged ignores max",
			stat:    Stat{Type: StatSpeed, Min: 3, Max: 100},
			wantMin: 3,
			wantMax: 3,
		},
		{
			name:    "ranged plus",
			stat:    Stat{Type: StatCritChance, Ranged: true, Min: 3, Max: 7},
			wantMin: 3,
			wantMax: 7,
		},
		{
			name:    "ranged minus",
			stat:    Stat{Type: StatArmor, Operation: OperationMinus, Ranged: true, Min: 2, Max: 4},
			wantMin: -2,
			wantMax: -4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMin, tt.stat.Value(BoundMin))
			assert.Equal(t, tt.wantMax, tt.stat.Value(BoundMax))
		})
	}
}

func TestStat_DisplayValue(t *testing.T) {
	tests := []struct {
		stat Stat
		want string
	}{
		{Stat{Min: 5}, "+5"},
		{Stat{Operation: OperationMinus, Min: 10, Percentage: true}, "-10%"},
		{Stat{Ranged: true, Min: 3, Max: 5, Percentage: true}, "+3-5%"},
		{Stat{Min: 1.5}, "+1.5"},
		{Stat{Operation: OperationMinus, Ranged: true, Min: 2, Max: 4}, "-2-4"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stat.DisplayValue())
		})
	}
}

func TestStatType_CaptionKey(t *testing.T) {
	assert.Equal(t, "stat.damage", StatDamage.CaptionKey())
	assert.Equal(t, "stat.crit_chance", StatCritChance.CaptionKey())
	assert.Equal(t, "stat.mana_regen", StatType("MANA_REGEN").CaptionKey())
}

func TestOperation_String(t *testing.T) {
	assert.Equal(t, "+", OperationPlus.String())
	assert.Equal(t, "-", OperationMinus.String())
}
