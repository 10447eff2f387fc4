package data

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCatalog  = errors.New("no custom items loaded")
	ErrMissingItems  = errors.New("items section is missing")
	ErrInvalidStat   = errors.New("invalid stat definition")
	ErrInvalidItem   = errors.New("invalid item definition")
	ErrDuplicateItem = errors.New("duplicate item id")
	ErrUnknownItem   = errors.New("unknown item")
)

// LoadError - ошибка загрузки каталога из источника.
// Фатальна для инициализации, повторов не делаем.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading custom items from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
