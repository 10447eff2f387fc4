package model

// Теги, которыми помечаются внешние стеки предметов.
const (
	ItemTag = "rpginventory.item"
	PetTag  = "rpginventory.pet"
)

// MaterialAir - материал пустого стека.
const MaterialAir = "AIR"

// ItemStack is an opaque item handle owned by the host platform.
// The engine only reads identifier tags embedded into it.
type ItemStack interface {
	// Tag returns the tag value or "" when the tag is absent.
	Tag(key string) string
}

// IsCustomItem reports whether the stack carries a custom item id.
func IsCustomItem(s ItemStack) bool {
	return s != nil && s.Tag(ItemTag) != ""
}

// IsPetItem reports whether the stack carries a pet id.
func IsPetItem(s ItemStack) bool {
	return s != nil && s.Tag(PetTag) != ""
}

// Stack - простая реализация ItemStack для каталога, CLI и тестов.
type Stack struct {
	Material    string
	Name        string
	Lore        []string
	Unbreakable bool

	tags map[string]string
}

// NewStack creates an untagged stack of the given material.
func NewStack(material string) *Stack {
	return &Stack{Material: material}
}

// WithTag sets a tag and returns the stack for chaining.
func (s *Stack) WithTag(key, value string) *Stack {
	if s.tags == nil {
		s.tags = make(map[string]string, 2)
	}
	s.tags[key] = value
	return s
}

// Tag implements ItemStack. Safe on a nil receiver.
func (s *Stack) Tag(key string) string {
	if s == nil {
		return ""
	}
	return s.tags[key]
}

// IsAir reports whether the stack is empty.
func (s *Stack) IsAir() bool {
	return s == nil || s.Material == "" || s.Material == MaterialAir
}
