package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodities-dashboard/internal/application/session"
	"github.com/jhoicas/commodities-dashboard/internal/domain"
	"github.com/jhoicas/commodities-dashboard/internal/domain/entity"
	"github.com/jhoicas/commodities-dashboard/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeRecordStore implementa repository.SessionRecordStore en memoria.
// Se comparte entre managers para simular "otro proceso" leyendo el mismo
// almacenamiento durable.
type fakeRecordStore struct {
	mu     sync.Mutex
	record []byte
}

func (s *fakeRecordStore) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.record == nil {
		return nil, nil
	}
	out := make([]byte, len(s.record))
	copy(out, s.record)
	return out, nil
}

func (s *fakeRecordStore) Save(record []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = make([]byte, len(record))
	copy(s.record, record)
	return nil
}

func (s *fakeRecordStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = nil
	return nil
}

// newManager construye un manager con el directorio de demo y sin latencia
// (salvo que el test la necesite).
func newManager(store *fakeRecordStore, delay time.Duration) *session.Manager {
	return session.NewManager(store, memory.NewCredentialDirectory(), delay)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

// Login con email conocido y password correcto: Anonymous → Authenticated,
// y el registro persistido se restaura idéntico en un "proceso nuevo".
func TestLogin_CredencialesValidas_AutenticaYPersiste(t *testing.T) {
	store := &fakeRecordStore{}
	m := newManager(store, 0)

	user, err := m.Login(context.Background(), "manager@commodities.com", "manager123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "John Manager", user.Name)
	assert.Equal(t, entity.RoleManager, user.Role)
	assert.True(t, m.IsAuthenticated())

	// "Proceso nuevo": otro manager sobre el mismo almacenamiento.
	m2 := newManager(store, 0)
	require.NoError(t, m2.Restore(context.Background()))
	restored := m2.CurrentUser()
	require.NotNil(t, restored, "la sesión debe restaurarse desde el registro persistido")
	assert.Equal(t, "manager@commodities.com", restored.Email)
	assert.Equal(t, entity.RoleManager, restored.Role)
}

// El email se busca sin distinguir mayúsculas; el password es comparación exacta.
func TestLogin_EmailCaseInsensitive(t *testing.T) {
	m := newManager(&fakeRecordStore{}, 0)

	user, err := m.Login(context.Background(), "MANAGER@Commodities.COM", "manager123")
	require.NoError(t, err)
	assert.Equal(t, "manager@commodities.com", user.Email)
}

func TestLogin_EmailDesconocido_RetornaUserNotFound(t *testing.T) {
	m := newManager(&fakeRecordStore{}, 0)

	_, err := m.Login(context.Background(), "nadie@commodities.com", "manager123")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.False(t, m.IsAuthenticated(), "un login fallido debe dejar la sesión anónima")
}

func TestLogin_PasswordIncorrecto_RetornaInvalidPassword(t *testing.T) {
	m := newManager(&fakeRecordStore{}, 0)

	_, err := m.Login(context.Background(), "keeper@commodities.com", "equivocado")
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
	assert.False(t, m.IsAuthenticated())
}

// El password NO se normaliza: la comparación es exacta.
func TestLogin_PasswordConMayusculas_Falla(t *testing.T) {
	m := newManager(&fakeRecordStore{}, 0)

	_, err := m.Login(context.Background(), "keeper@commodities.com", "KEEPER123")
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

// Mientras un login está en vuelo (latencia simulada), un segundo Login y un
// Logout son inválidos y no tocan el estado.
func TestLogin_EnVuelo_BloqueaLoginYLogout(t *testing.T) {
	m := newManager(&fakeRecordStore{}, 150*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		_, err := m.Login(context.Background(), "manager@commodities.com", "manager123")
		done <- err
	}()

	// Dar tiempo a que el primer login tome el latch.
	time.Sleep(30 * time.Millisecond)

	_, err := m.Login(context.Background(), "keeper@commodities.com", "keeper123")
	assert.ErrorIs(t, err, domain.ErrLoginInFlight)
	assert.ErrorIs(t, m.Logout(), domain.ErrLoginInFlight)

	require.NoError(t, <-done, "el login original debe completar normalmente")
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, entity.RoleManager, m.CurrentRole(),
		"debe quedar la sesión del login original, no la del rechazado")
}

// Cancelar el contexto durante la latencia simulada aborta el login sin
// transición de estado.
func TestLogin_ContextoCancelado_AbortaSinAutenticar(t *testing.T) {
	m := newManager(&fakeRecordStore{}, 200*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := m.Login(ctx, "manager@commodities.com", "manager123")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, m.IsAuthenticated())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_LimpiaEstadoYRegistro(t *testing.T) {
	store := &fakeRecordStore{}
	m := newManager(store, 0)

	_, err := m.Login(context.Background(), "keeper@commodities.com", "keeper123")
	require.NoError(t, err)
	require.True(t, m.IsAuthenticated())

	require.NoError(t, m.Logout())
	assert.False(t, m.IsAuthenticated())

	record, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, record, "logout debe eliminar el registro persistido")
}

// Logout es idempotente: llamarlo siendo anónimo no es error.
func TestLogout_Idempotente(t *testing.T) {
	m := newManager(&fakeRecordStore{}, 0)

	require.NoError(t, m.Logout())
	require.NoError(t, m.Logout())
	assert.False(t, m.IsAuthenticated())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Restore
// ──────────────────────────────────────────────────────────────────────────────

func TestRestore_SinRegistro_QuedaAnonimo(t *testing.T) {
	m := newManager(&fakeRecordStore{}, 0)

	require.NoError(t, m.Restore(context.Background()))
	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.CurrentUser())
	assert.Empty(t, m.CurrentRole())
}

// Un registro corrupto se descarta, la sesión queda anónima y el registro se
// elimina. Repetir Restore es idempotente.
func TestRestore_RegistroCorrupto_DescartaYLimpia(t *testing.T) {
	cases := []struct {
		name   string
		record string
	}{
		{"json inválido", `{esto no es json`},
		{"forma incompleta", `{"id":"1","email":"x@y.com"}`},
		{"rol desconocido", `{"id":"1","email":"x@y.com","name":"X","role":"superadmin"}`},
		{"campos vacíos", `{"id":"","email":"","name":"","role":"manager"}`},
		{"tipo equivocado", `[1,2,3]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeRecordStore{record: []byte(tc.record)}
			m := newManager(store, 0)

			require.NoError(t, m.Restore(context.Background()),
				"un registro malformado nunca debe propagar error")
			assert.False(t, m.IsAuthenticated(),
				"un registro malformado jamás produce sesión parcialmente autenticada")

			record, err := store.Load()
			require.NoError(t, err)
			assert.Nil(t, record, "el registro inválido debe eliminarse")

			// Idempotente sobre llamadas repetidas.
			require.NoError(t, m.Restore(context.Background()))
			assert.False(t, m.IsAuthenticated())
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Authorize
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorize_AnonimoNuncaPasa(t *testing.T) {
	m := newManager(&fakeRecordStore{}, 0)

	assert.False(t, m.Authorize())
	assert.False(t, m.Authorize(entity.RoleManager))
}

func TestAuthorize_RolRequerido(t *testing.T) {
	m := newManager(&fakeRecordStore{}, 0)
	_, err := m.Login(context.Background(), "keeper@commodities.com", "keeper123")
	require.NoError(t, err)

	assert.True(t, m.Authorize(), "sin roles requeridos basta estar autenticado")
	assert.True(t, m.Authorize(entity.RoleStorekeeper))
	assert.True(t, m.Authorize(entity.RoleManager, entity.RoleStorekeeper))
	assert.False(t, m.Authorize(entity.RoleManager),
		"storekeeper no debe pasar una ruta solo manager")
}
