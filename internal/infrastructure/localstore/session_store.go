// Package localstore implementa el puerto SessionRecordStore sobre un único
// archivo JSON: el equivalente en proceso del registro con clave del
// almacenamiento durable del navegador.
package localstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSessionStore guarda a lo sumo un registro serializado en disco.
// La escritura pasa por un archivo temporal + rename para que un proceso
// interrumpido nunca deje un registro a medio escribir.
type FileSessionStore struct {
	path string
}

// NewFileSessionStore construye el store sobre la ruta indicada.
func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

// Load devuelve el registro persistido, o (nil, nil) si no existe.
func (s *FileSessionStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save reemplaza el registro persistido de forma atómica.
func (s *FileSessionStore) Save(record []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(record); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}

// Clear elimina el registro. Idempotente: sin registro no es error.
func (s *FileSessionStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
