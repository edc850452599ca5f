package model

import (
	"fmt"
	"math"
)

// StatKind identifies a substat type on a gear piece.
// Каждый kind имеет свой набор roll values и rounding mode (см. internal/data).
type StatKind string

// Built-in stat kinds. Percent stats are displayed with one decimal,
// flat stats as whole numbers.
const (
	StatAttackPercent  StatKind = "attack_percent"
	StatHPPercent      StatKind = "hp_percent"
	StatDefensePercent StatKind = "defense_percent"
	StatCritRate       StatKind = "crit_rate"
	StatCritDamage     StatKind = "crit_damage"
	StatEffectHit      StatKind = "effect_hit"
	StatEffectResist   StatKind = "effect_resist"
	StatAttackFlat     StatKind = "attack_flat"
	StatHPFlat         StatKind = "hp_flat"
	StatDefenseFlat    StatKind = "defense_flat"
	StatSpeed          StatKind = "speed"
)

// Attribute -- один substat на предмете: kind и накопленное значение,
// которое предмет показывает после всех upgrade rolls.
type Attribute struct {
	Kind   StatKind
	Amount float64
}

// Gear -- оцениваемый предмет со своими substats.
// Immutable после создания: attributes копируются в NewGear.
type Gear struct {
	name  string
	attrs []Attribute
}

// NewGear создаёт предмет с валидацией.
//
// Parameters:
//   - name: display name (не может быть пустым)
//   - attrs: observed substats (kind обязателен, amount должен быть конечным)
//
// Returns:
//   - *Gear: новый предмет
//   - error: если валидация провалилась
func NewGear(name string, attrs []Attribute) (*Gear, error) {
	if name == "" {
		return nil, fmt.Errorf("gear name cannot be empty")
	}
	for i, a := range attrs {
		if a.Kind == "" {
			return nil, fmt.Errorf("attribute %d: kind cannot be empty", i)
		}
		if math.IsNaN(a.Amount) || math.IsInf(a.Amount, 0) {
			return nil, fmt.Errorf("attribute %d (%s): amount must be finite, got %v", i, a.Kind, a.Amount)
		}
	}

	g := &Gear{
		name:  name,
		attrs: make([]Attribute, len(attrs)),
	}
	copy(g.attrs, attrs)
	return g, nil
}

// Name returns the display name.
func (g *Gear) Name() string { return g.name }

// Attributes returns the observed substats in their original order.
// Caller must not mutate the returned slice.
func (g *Gear) Attributes() []Attribute { return g.attrs }

// AttributeCount returns the number of observed substats.
func (g *Gear) AttributeCount() int { return len(g.attrs) }
