package model

// Pet - питомец, выдаваемый предметом-ошейником.
// Участвует только в проверке допуска по уровню и классу.
type Pet struct {
	id      string
	name    string
	level   int32
	classes []string
}

// NewPet creates a pet definition. An empty class list means unrestricted.
func NewPet(id, name string, level int32, classes []string) *Pet {
	p := &Pet{id: id, name: name, level: level}
	if len(classes) > 0 {
		p.classes = append([]string{}, classes...)
	}
	return p
}

func (p *Pet) ID() string        { return p.id }
func (p *Pet) Name() string      { return p.name }
func (p *Pet) Level() int32      { return p.level }
func (p *Pet) Classes() []string { return p.classes }
