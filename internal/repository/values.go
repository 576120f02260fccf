package repository

import (
	"fmt"

	"user-directory-service/internal/domain"
)

// valueAs приводит значение поля к ожидаемому типу.
func valueAs[T any](field domain.FieldKind, value any) (T, error) {
	v, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: field %s expects %T, got %T", domain.ErrInvalidValue, field, zero, value)
	}
	return v, nil
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	c.IPList = append([]string(nil), u.IPList...)
	c.Access.Games = make([]domain.Game, len(u.Access.Games))
	for i, g := range u.Access.Games {
		c.Access.Games[i] = domain.Game{Name: append([]string(nil), g.Name...)}
	}
	return &c
}
