package entity

// User administrador del back-office. Lista fija; nunca se crea ni modifica por API.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt
	Name         string
}

// DisplayName nombre a mostrar; cae al usuario si no hay nombre.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
