package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema crea las tablas si no existen. Idempotente.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("aplicar schema: %w", err)
	}
	return nil
}

// SeedAdmins inserta los administradores que falten; no pisa claves existentes.
func SeedAdmins(ctx context.Context, q Querier, users []*entity.User) error {
	for _, u := range users {
		_, err := q.Exec(ctx,
			`INSERT INTO admin_users (username, password_hash, name) VALUES ($1, $2, $3)
			 ON CONFLICT (username) DO NOTHING`,
			u.Username, u.PasswordHash, u.Name,
		)
		if err != nil {
			return fmt.Errorf("seed admin %s: %w", u.Username, err)
		}
	}
	return nil
}
