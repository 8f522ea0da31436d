package entity

import "github.com/jhoicas/commodities-dashboard/internal/domain"

// Roles válidos para User.
const (
	RoleManager     = "manager"
	RoleStorekeeper = "storekeeper"
)

// User representa la identidad autenticada de la sesión.
// Es la misma forma que se serializa en el registro de sesión persistido,
// por lo que Validate es el contrato de restauración: cualquier registro
// que no cumpla se descarta y la sesión queda anónima.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"` // manager | storekeeper
}

// ValidRole indica si el rol pertenece al conjunto conocido.
func ValidRole(role string) bool {
	return role == RoleManager || role == RoleStorekeeper
}

// Validate verifica la forma del User contra el contrato de sesión.
// Nunca se confía en datos deserializados sin pasar por aquí.
func (u *User) Validate() error {
	if u.ID == "" || u.Email == "" || u.Name == "" {
		return domain.ErrMalformedSession
	}
	if !ValidRole(u.Role) {
		return domain.ErrMalformedSession
	}
	return nil
}
