package repository

import "github.com/jhoicas/commodities-dashboard/internal/domain/entity"

// Credential entrada del directorio de credenciales: password en claro
// (directorio ilustrativo, sin hashing) más el User asociado.
type Credential struct {
	Password string
	User     entity.User
}

// CredentialDirectory define el puerto de consulta de identidades (DIP).
// La clave es el email normalizado a minúsculas. Lookup devuelve nil si no
// existe entrada; un proveedor de identidad real es intercambiable detrás
// de este contrato.
type CredentialDirectory interface {
	Lookup(email string) (*Credential, error)
}
