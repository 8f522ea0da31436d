// Package memory contiene los colaboradores fijos en memoria: el directorio
// de credenciales de demostración y el seed del catálogo.
package memory

import (
	"strings"

	"github.com/jhoicas/commodities-dashboard/internal/domain/entity"
	"github.com/jhoicas/commodities-dashboard/internal/domain/repository"
)

// CredentialDirectory directorio fijo de dos entradas (manager y storekeeper).
// Passwords en claro: es un directorio ilustrativo; un proveedor de identidad
// real se conecta detrás del mismo puerto.
type CredentialDirectory struct {
	entries map[string]repository.Credential
}

// NewCredentialDirectory construye el directorio con los usuarios de demo.
func NewCredentialDirectory() *CredentialDirectory {
	return &CredentialDirectory{
		entries: map[string]repository.Credential{
			"manager@commodities.com": {
				Password: "manager123",
				User: entity.User{
					ID:    "1",
					Email: "manager@commodities.com",
					Name:  "John Manager",
					Role:  entity.RoleManager,
				},
			},
			"keeper@commodities.com": {
				Password: "keeper123",
				User: entity.User{
					ID:    "2",
					Email: "keeper@commodities.com",
					Name:  "Jane Keeper",
					Role:  entity.RoleStorekeeper,
				},
			},
		},
	}
}

// Lookup busca por email normalizado a minúsculas. Devuelve nil si no hay entrada.
func (d *CredentialDirectory) Lookup(email string) (*repository.Credential, error) {
	cred, ok := d.entries[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return &cred, nil
}
