package memory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// Admin credencial en claro de un administrador sembrado al arrancar.
type Admin struct {
	Username string
	Password string
	Name     string
}

// DefaultAdmins administradores del back-office.
var DefaultAdmins = []Admin{
	{Username: "ricardo", Password: "1234", Name: "Ricardo"},
	{Username: "eliseo", Password: "1234", Name: "Eliseo"},
}

// HashAdmins hashea las claves con bcrypt al costo dado (bcrypt.DefaultCost en producción).
func HashAdmins(admins []Admin, cost int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(admins))
	for i, a := range admins {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash admin %s: %w", a.Username, err)
		}
		out = append(out, &entity.User{
			ID:           int64(i + 1),
			Username:     a.Username,
			PasswordHash: string(hash),
			Name:         a.Name,
		})
	}
	return out, nil
}

// UserRepository lista fija de administradores; solo lectura.
type UserRepository struct {
	users map[string]*entity.User
}

// NewUserRepository indexa los usuarios por nombre de usuario.
func NewUserRepository(users []*entity.User) *UserRepository {
	m := make(map[string]*entity.User, len(users))
	for _, u := range users {
		m[u.Username] = u
	}
	return &UserRepository{users: m}
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}
