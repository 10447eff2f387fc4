// Package equip decides whether an actor may use a classified item
// (a custom item or a pet).
//
// Check order:
//  1. Level: actor level must reach the item level (NoLevel skips the check).
//  2. Class: if the item lists classes, the actor class must be one of them.
//
// The first failing check wins; with notify set the actor receives
// "error.item.level" or "error.item.class".
package equip

import (
	"strings"

	"github.com/udisondev/rpginventory/internal/data"
	"github.com/udisondev/rpginventory/internal/model"
)

// Captions - источник локализованных сообщений.
type Captions interface {
	Caption(key string, args ...any) string
}

// Catalogs returns the active catalog snapshot.
type Catalogs interface {
	Current() *data.Catalog
}

// Filter - фильтр допуска по уровню и классу. Ничего не хранит, кроме зависимостей.
type Filter struct {
	catalogs Catalogs
	captions Captions
}

// NewFilter creates a filter.
func NewFilter(catalogs Catalogs, captions Captions) *Filter {
	return &Filter{catalogs: catalogs, captions: captions}
}

// Allowed reports whether actor passes the level and class gates of item.
func (f *Filter) Allowed(actor model.Actor, item model.Classified, notify bool) bool {
	if !CheckLevel(actor, item.Level()) {
		if notify {
			actor.SendMessage(f.captions.Caption("error.item.level", item.Level()))
		}
		return false
	}

	if len(item.Classes()) == 0 || CheckClass(actor, item.Classes()) {
		return true
	}

	if notify {
		actor.SendMessage(f.captions.Caption("error.item.class", model.ClassesString(item)))
	}
	return false
}

// AllowedStack resolves the stack against the active catalog and checks it.
// Stacks that are neither custom items nor pets, or whose id is unknown,
// are not gated.
func (f *Filter) AllowedStack(actor model.Actor, stack model.ItemStack, notify bool) bool {
	cat := f.catalogs.Current()

	var item model.Classified
	switch {
	case model.IsCustomItem(stack):
		if ci := cat.FromStack(stack); ci != nil {
			item = ci
		}
	case model.IsPetItem(stack):
		if pet := cat.PetFromStack(stack); pet != nil {
			item = pet
		}
	}
	if item == nil {
		return true
	}

	return f.Allowed(actor, item, notify)
}

// CheckLevel reports whether actor reaches level. NoLevel always passes.
func CheckLevel(actor model.Actor, level int32) bool {
	return level == model.NoLevel || actor.Level() >= level
}

// CheckClass reports whether actor's class is in classes (case-insensitive).
func CheckClass(actor model.Actor, classes []string) bool {
	class := actor.ClassName()
	for _, c := range classes {
		if strings.EqualFold(c, class) {
			return true
		}
	}
	return false
}
