package repository

import (
	"context"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
)

// UserRepository puerto de lectura de administradores (lista fija).
type UserRepository interface {
	// FindByUsername devuelve (nil, nil) si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
