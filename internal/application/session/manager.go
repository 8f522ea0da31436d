// Package session contiene el Session Manager: autenticación contra el
// directorio de credenciales, persistencia/restauración de la sesión activa
// y predicados de autorización por rol.
package session

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/commodities-dashboard/internal/application/dto"
	"github.com/jhoicas/commodities-dashboard/internal/domain"
	"github.com/jhoicas/commodities-dashboard/internal/domain/entity"
	"github.com/jhoicas/commodities-dashboard/internal/domain/repository"
)

// Manager administra la sesión activa (una o ninguna).
//
// Máquina de estados: Uninitialized → {Anonymous, Authenticated}.
// Uninitialized es transitorio y solo existe durante Restore. Las transiciones
// y la escritura del registro persistido forman una sola sección crítica:
// los handlers HTTP corren en paralelo.
type Manager struct {
	store      repository.SessionRecordStore
	directory  repository.CredentialDirectory
	loginDelay time.Duration // latencia simulada del login (modela la llamada remota)

	mu       sync.Mutex
	user     *entity.User // nil = anónimo
	inFlight bool         // login en curso: bloquea Login/Logout concurrentes
}

// NewManager construye el Session Manager. loginDelay modela la latencia
// observable de la llamada remota de autenticación (el original usa 800ms).
func NewManager(store repository.SessionRecordStore, directory repository.CredentialDirectory, loginDelay time.Duration) *Manager {
	return &Manager{
		store:      store,
		directory:  directory,
		loginDelay: loginDelay,
	}
}

// decodeRecord valida la forma del registro persistido. Es el único punto
// por el que pasan datos deserializados antes de convertirse en sesión.
func decodeRecord(record []byte) (*entity.User, error) {
	var u entity.User
	if err := json.Unmarshal(record, &u); err != nil {
		return nil, domain.ErrMalformedSession
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return &u, nil
}

// Restore lee el registro persistido, si existe, y restaura la sesión.
// Cualquier fallo de lectura o de forma descarta el registro y deja la
// sesión anónima: nunca se confía en un registro parcialmente válido.
// Es el único punto de suspensión del arranque; nunca bloquea indefinidamente.
func (m *Manager) Restore(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	record, err := m.store.Load()
	if err != nil || record == nil {
		m.user = nil
		if err != nil {
			log.Warn().Err(err).Msg("sesión: no se pudo leer el registro persistido")
			_ = m.store.Clear()
		}
		return nil
	}
	user, err := decodeRecord(record)
	if err != nil {
		// Registro corrupto o de un esquema anterior: descartar y seguir anónimo.
		log.Warn().Err(err).Msg("sesión: registro persistido inválido, se descarta")
		m.user = nil
		_ = m.store.Clear()
		return nil
	}
	m.user = user
	return nil
}

// Login busca el email (insensible a mayúsculas) en el directorio y compara
// el password con igualdad exacta, sin normalización ni hashing.
//
// La operación tiene latencia observable (loginDelay) y mientras está en
// vuelo ningún otro Login ni Logout es válido: devuelven ErrLoginInFlight
// sin tocar el estado.
func (m *Manager) Login(ctx context.Context, email, password string) (*dto.UserResponse, error) {
	m.mu.Lock()
	if m.inFlight {
		m.mu.Unlock()
		return nil, domain.ErrLoginInFlight
	}
	m.inFlight = true
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.inFlight = false
		m.mu.Unlock()
	}()

	// Latencia simulada de la llamada remota.
	if m.loginDelay > 0 {
		select {
		case <-time.After(m.loginDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	cred, err := m.directory.Lookup(strings.ToLower(email))
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, domain.ErrUserNotFound
	}
	if cred.Password != password {
		return nil, domain.ErrInvalidPassword
	}

	record, err := json.Marshal(cred.User)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Save(record); err != nil {
		return nil, err
	}
	u := cred.User
	m.user = &u
	return toUserResponse(&u), nil
}

// Logout limpia el estado en memoria y elimina el registro persistido.
// Idempotente: es seguro llamarlo siendo ya anónimo. Durante un login en
// vuelo no es válido.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inFlight {
		return domain.ErrLoginInFlight
	}
	m.user = nil
	return m.store.Clear()
}

// IsAuthenticated indica si hay sesión activa.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}

// CurrentUser devuelve una copia del usuario autenticado, o nil si la sesión es anónima.
func (m *Manager) CurrentUser() *entity.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// CurrentRole devuelve el rol de la sesión activa, o cadena vacía si es anónima.
func (m *Manager) CurrentRole() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return ""
	}
	return m.user.Role
}

// Authorize devuelve true si hay sesión activa y su rol está entre los
// requeridos. Sin roles requeridos, cualquier sesión autenticada pasa.
func (m *Manager) Authorize(requiredRoles ...string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return false
	}
	if len(requiredRoles) == 0 {
		return true
	}
	for _, r := range requiredRoles {
		if m.user.Role == r {
			return true
		}
	}
	return false
}

// Session devuelve el estado actual para la capa HTTP.
func (m *Manager) Session() *dto.SessionResponse {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return &dto.SessionResponse{Authenticated: false}
	}
	return &dto.SessionResponse{Authenticated: true, User: toUserResponse(m.user)}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
