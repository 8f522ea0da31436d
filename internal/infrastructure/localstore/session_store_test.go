package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodities-dashboard/internal/infrastructure/localstore"
)

func newStore(t *testing.T) *localstore.FileSessionStore {
	t.Helper()
	return localstore.NewFileSessionStore(filepath.Join(t.TempDir(), "data", "session.json"))
}

func TestLoad_SinArchivo_RetornaNilNil(t *testing.T) {
	s := newStore(t)

	data, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, data, "sin archivo no hay registro, pero tampoco error")
}

func TestSaveLoad_IdaYVuelta(t *testing.T) {
	s := newStore(t)
	record := []byte(`{"id":"1","email":"manager@commodities.com","name":"John Manager","role":"manager"}`)

	require.NoError(t, s.Save(record))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

// Save crea el directorio contenedor si no existe.
func TestSave_CreaDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	s := localstore.NewFileSessionStore(filepath.Join(dir, "session.json"))

	require.NoError(t, s.Save([]byte(`{}`)))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

// Un Save posterior reemplaza por completo el registro anterior.
func TestSave_ReemplazaRegistroAnterior(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save([]byte(`{"role":"manager"}`)))
	require.NoError(t, s.Save([]byte(`{"role":"storekeeper"}`)))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"role":"storekeeper"}`), got)
}

// La escritura vía temporal + rename no deja archivos sueltos en el directorio.
func TestSave_NoDejaTemporales(t *testing.T) {
	dir := t.TempDir()
	s := localstore.NewFileSessionStore(filepath.Join(dir, "session.json"))
	require.NoError(t, s.Save([]byte(`{}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "session.json", entries[0].Name())
}

func TestClear_EliminaRegistro(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save([]byte(`{}`)))

	require.NoError(t, s.Clear())

	data, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestClear_Idempotente(t *testing.T) {
	s := newStore(t)
	assert.NoError(t, s.Clear(), "sin registro no es error")
	require.NoError(t, s.Save([]byte(`{}`)))
	assert.NoError(t, s.Clear())
	assert.NoError(t, s.Clear())
}
