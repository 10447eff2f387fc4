//go:generate mockgen -destination=mock/mock_actor.go -package=mockmodel -source=actor.go

package model

import "sync"

// Actor - снимок состояния игрока, предоставляемый платформой.
type Actor interface {
	Level() int32
	ClassName() string

	// PassiveItems returns items that affect stats without being held.
	// The platform is expected to have filtered them already.
	PassiveItems() []ItemStack
	ArmorContents() []ItemStack
	MainHand() ItemStack
	OffHand() ItemStack

	// SendMessage delivers a user-visible message (denial reasons).
	SendMessage(msg string)
}

// ActorSnapshot is an in-memory Actor.
type ActorSnapshot struct {
	level    int32
	class    string
	passive  []ItemStack
	armor    []ItemStack
	mainHand ItemStack
	offHand  ItemStack

	mu       sync.Mutex
	messages []string
}

// NewActorSnapshot creates an actor with empty equipment.
func NewActorSnapshot(level int32, class string) *ActorSnapshot {
	return &ActorSnapshot{level: level, class: class}
}

// WithPassive appends passive items.
func (a *ActorSnapshot) WithPassive(items ...ItemStack) *ActorSnapshot {
	a.passive = append(a.passive, items...)
	return a
}

// WithArmor appends armor slot contents.
func (a *ActorSnapshot) WithArmor(items ...ItemStack) *ActorSnapshot {
	a.armor = append(a.armor, items...)
	return a
}

// WithHands sets main-hand and off-hand items. Either may be nil.
func (a *ActorSnapshot) WithHands(main, off ItemStack) *ActorSnapshot {
	a.mainHand = main
	a.offHand = off
	return a
}

func (a *ActorSnapshot) Level() int32               { return a.level }
func (a *ActorSnapshot) ClassName() string          { return a.class }
func (a *ActorSnapshot) PassiveItems() []ItemStack  { return a.passive }
func (a *ActorSnapshot) ArmorContents() []ItemStack { return a.armor }
func (a *ActorSnapshot) MainHand() ItemStack        { return a.mainHand }
func (a *ActorSnapshot) OffHand() ItemStack         { return a.offHand }

// SendMessage records the message.
func (a *ActorSnapshot) SendMessage(msg string) {
	a.mu.Lock()
	a.messages = append(a.messages, msg)
	a.mu.Unlock()
}

// Messages returns a copy of all messages sent to the actor.
func (a *ActorSnapshot) Messages() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.messages...)
}
