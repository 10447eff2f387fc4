package model

// Modifier - суммарный эффект всех подходящих предметов на один атрибут.
// Бонусы центрированы на 0, множители на 1.
type Modifier struct {
	MinBonus      float64
	MaxBonus      float64
	MinMultiplier float64
	MaxMultiplier float64
}

// IdentityModifier returns the modifier that changes nothing.
func IdentityModifier() Modifier {
	return Modifier{MinMultiplier: 1, MaxMultiplier: 1}
}

// Apply applies the modifier to a base value at the given bound:
// (base + bonus) * multiplier.
func (m Modifier) Apply(base float64, b Bound) float64 {
	if b == BoundMax {
		return (base + m.MaxBonus) * m.MaxMultiplier
	}
	return (base + m.MinBonus) * m.MinMultiplier
}

// IsIdentity reports whether the modifier has no effect.
func (m Modifier) IsIdentity() bool {
	return m == IdentityModifier()
}
