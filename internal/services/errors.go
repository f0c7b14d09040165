package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound — идентификатор не указывает на существующую запись.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized — неверная пара email/пароль.
	ErrUnauthorized = errors.New("invalid email or password")
)

// ValidationError — некорректные поля запроса (HTTP 400).
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}
