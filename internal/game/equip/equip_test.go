package equip

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/udisondev/rpginventory/internal/data"
	"github.com/udisondev/rpginventory/internal/model"
	mockmodel "github.com/udisondev/rpginventory/internal/model/mock"
)

// keyCaptions formats captions as "key:args" so tests can match reasons.
type keyCaptions struct{}

func (keyCaptions) Caption(key string, args ...any) string {
	if len(args) == 0 {
		return key
	}
	return fmt.Sprintf("%s:%v", key, args[0])
}

func newTestFilter() *Filter {
	reg := data.NewTestRegistry(&data.Document{
		Items: map[string]data.ItemConfig{
			"sword":  {Texture: "IRON_SWORD", Level: data.Int32(10), Classes: []string{"Warrior", "Paladin"}},
			"wand":   {Texture: "STICK", Classes: []string{"Mage"}},
			"pebble": {Texture: "STONE"},
		},
		Pets: map[string]data.PetConfig{
			"wolf": {Name: "Wolf", Level: data.Int32(20)},
		},
	})
	return NewFilter(reg, keyCaptions{})
}

func TestFilter_Allowed(t *testing.T) {
	tests := []struct {
		name    string
		level   int32
		classes []string
		actorLv int32
		class   string
		want    bool
	}{
		{"no requirements", model.NoLevel, nil, 1, "Rogue", true},
		{"level met exactly", 10, nil, 10, "Rogue", true},
		{"level too low", 10, nil, 9, "Rogue", false},
		{"class allowed", model.NoLevel, []string{"Warrior"}, 1, "Warrior", true},
		{"class case-insensitive", model.NoLevel, []string{"Warrior"}, 1, "warrior", true},
		{"class denied", model.NoLevel, []string{"Warrior"}, 1, "Mage", false},
		{"both met", 5, []string{"Mage", "Warrior"}, 5, "Mage", true},
		{"level met, class denied", 5, []string{"Mage"}, 50, "Warrior", false},
		{"class met, level denied", 50, []string{"Mage"}, 5, "Mage", false},
	}

	f := newTestFilter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := model.NewCustomItem("x", model.ItemParams{Level: tt.level, Classes: tt.classes})
			actor := model.NewActorSnapshot(tt.actorLv, tt.class)

			assert.Equal(t, tt.want, f.Allowed(actor, item, false))
			assert.Empty(t, actor.Messages(), "notify=false must stay silent")
		})
	}
}

func TestFilter_Allowed_NotifyLevel(t *testing.T) {
	f := newTestFilter()
	item := model.NewCustomItem("x", model.ItemParams{Level: 10, Classes: []string{"Mage"}})
	actor := model.NewActorSnapshot(3, "Warrior")

	assert.False(t, f.Allowed(actor, item, true))
	// Уровень проверяется первым: одно сообщение об уровне, про класс молчим
	assert.Equal(t, []string{"error.item.level:10"}, actor.Messages())
}

func TestFilter_Allowed_NotifyClass(t *testing.T) {
	f := newTestFilter()
	item := model.NewCustomItem("x", model.ItemParams{Level: model.NoLevel, Classes: []string{"Mage", "Cleric"}})
	actor := model.NewActorSnapshot(3, "Warrior")

	assert.False(t, f.Allowed(actor, item, true))
	assert.Equal(t, []string{"error.item.class:Mage, Cleric"}, actor.Messages())
}

func TestFilter_Allowed_LevelDenialSkipsClassCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// ClassName не ожидается: после отказа по уровню класс не читается
	actor := mockmodel.NewMockActor(ctrl)
	actor.EXPECT().Level().Return(int32(3))
	actor.EXPECT().SendMessage("error.item.level:10").Times(1)

	item := model.NewCustomItem("x", model.ItemParams{Level: 10, Classes: []string{"Mage"}})
	assert.False(t, newTestFilter().Allowed(actor, item, true))
}

func TestFilter_Allowed_SilentWithoutNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actor := mockmodel.NewMockActor(ctrl)
	actor.EXPECT().Level().Return(int32(50)).AnyTimes()
	actor.EXPECT().ClassName().Return("Warrior").AnyTimes()
	actor.EXPECT().SendMessage(gomock.Any()).Times(0)

	f := newTestFilter()
	assert.False(t, f.Allowed(actor, model.NewCustomItem("x", model.ItemParams{Level: model.NoLevel, Classes: []string{"Mage"}}), false))
	assert.True(t, f.Allowed(actor, model.NewCustomItem("y", model.ItemParams{Level: 50, Classes: []string{"warrior"}}), false))
}

func TestFilter_Allowed_Pet(t *testing.T) {
	f := newTestFilter()
	pet := model.NewPet("wolf", "Wolf", 20, []string{"Ranger"})

	assert.True(t, f.Allowed(model.NewActorSnapshot(20, "ranger"), pet, false))
	assert.False(t, f.Allowed(model.NewActorSnapshot(19, "Ranger"), pet, false))
	assert.False(t, f.Allowed(model.NewActorSnapshot(20, "Mage"), pet, false))
}

func TestFilter_AllowedStack(t *testing.T) {
	f := newTestFilter()
	low := model.NewActorSnapshot(5, "Warrior")

	sword := model.NewStack("IRON_SWORD").WithTag(model.ItemTag, "sword")
	pebble := model.NewStack("STONE").WithTag(model.ItemTag, "pebble")
	unknown := model.NewStack("STONE").WithTag(model.ItemTag, "ghost")
	collar := model.NewStack("LEAD").WithTag(model.PetTag, "wolf")
	vanilla := model.NewStack("BREAD")

	assert.False(t, f.AllowedStack(low, sword, false))
	assert.True(t, f.AllowedStack(low, pebble, false))
	assert.True(t, f.AllowedStack(low, unknown, false), "unknown ids are not gated")
	assert.False(t, f.AllowedStack(low, collar, true))
	assert.True(t, f.AllowedStack(low, vanilla, true))
	assert.True(t, f.AllowedStack(low, nil, true))

	require.Len(t, low.Messages(), 1)
	assert.Equal(t, "error.item.level:20", low.Messages()[0])
}

func TestCheckLevel(t *testing.T) {
	actor := model.NewActorSnapshot(1, "Rogue")
	assert.True(t, CheckLevel(actor, model.NoLevel))
	assert.True(t, CheckLevel(actor, 0))
	assert.True(t, CheckLevel(actor, 1))
	assert.False(t, CheckLevel(actor, 2))
}
