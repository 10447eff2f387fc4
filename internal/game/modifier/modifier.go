// Package modifier aggregates the effect of an actor's items on one attribute.
//
// Relevant items:
//   - passive items supplied by the platform (already filtered),
//   - armor slot contents,
//   - main-hand and off-hand items that are custom items and pass the
//     eligibility filter.
//
// For every relevant custom item declaring the requested stat, the signed
// value at each bound is added to the bonus (flat stats) or, divided by 100,
// to the multiplier (percentage stats).
package modifier

import (
	"slices"

	"github.com/udisondev/rpginventory/internal/data"
	"github.com/udisondev/rpginventory/internal/model"
)

// Catalogs returns the active catalog snapshot.
type Catalogs interface {
	Current() *data.Catalog
}

// Eligibility gates held items.
type Eligibility interface {
	Allowed(actor model.Actor, item model.Classified, notify bool) bool
}

// Aggregator считает Modifier по экипировке игрока.
type Aggregator struct {
	catalogs Catalogs
	filter   Eligibility
}

// NewAggregator creates an aggregator.
func NewAggregator(catalogs Catalogs, filter Eligibility) *Aggregator {
	return &Aggregator{catalogs: catalogs, filter: filter}
}

// Modifier returns the aggregate modifier of stat for actor without notifying
// the actor about ineligible held items.
func (a *Aggregator) Modifier(actor model.Actor, stat model.StatType) model.Modifier {
	return a.ModifierNotify(actor, stat, false)
}

// ModifierNotify is Modifier that optionally tells the actor why a held item
// was skipped.
func (a *Aggregator) ModifierNotify(actor model.Actor, stat model.StatType, notify bool) model.Modifier {
	cat := a.catalogs.Current()

	items := make([]*model.CustomItem, 0, 8)
	for _, s := range actor.PassiveItems() {
		if item := cat.FromStack(s); item != nil {
			items = append(items, item)
		}
	}
	for _, s := range actor.ArmorContents() {
		if item := cat.FromStack(s); item != nil {
			items = append(items, item)
		}
	}
	for _, s := range []model.ItemStack{actor.MainHand(), actor.OffHand()} {
		item := cat.FromStack(s)
		if item != nil && a.filter.Allowed(actor, item, notify) {
			items = append(items, item)
		}
	}

	return Aggregate(items, stat)
}

// Aggregate sums stat over items. The result does not depend on item order:
// contributions are sorted before summation, so float rounding is identical
// for every permutation.
func Aggregate(items []*model.CustomItem, stat model.StatType) model.Modifier {
	var sums accumulator
	for _, item := range items {
		if s, ok := item.Stat(stat); ok {
			sums.add(s)
		}
	}
	return sums.modifier()
}

type accumulator struct {
	minBonus, maxBonus []float64
	minMult, maxMult   []float64
}

func (acc *accumulator) add(s model.Stat) {
	lo, hi := s.Value(model.BoundMin), s.Value(model.BoundMax)
	if s.Percentage {
		acc.minMult = append(acc.minMult, lo/100)
		acc.maxMult = append(acc.maxMult, hi/100)
		return
	}
	acc.minBonus = append(acc.minBonus, lo)
	acc.maxBonus = append(acc.maxBonus, hi)
}

func (acc *accumulator) modifier() model.Modifier {
	return model.Modifier{
		MinBonus:      sum(acc.minBonus),
		MaxBonus:      sum(acc.maxBonus),
		MinMultiplier: 1 + sum(acc.minMult),
		MaxMultiplier: 1 + sum(acc.maxMult),
	}
}

func sum(values []float64) float64 {
	slices.Sort(values)
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
