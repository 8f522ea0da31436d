package repository

// SessionRecordStore define el puerto del almacenamiento durable de la sesión (DIP).
// Modela el registro único con clave del navegador: guarda a lo sumo un registro
// serializado. La validación de forma NO ocurre aquí; el Session Manager decide
// si los bytes cargados constituyen una sesión válida.
type SessionRecordStore interface {
	// Load devuelve el registro persistido, o (nil, nil) si no existe.
	Load() ([]byte, error)
	// Save reemplaza el registro persistido.
	Save(record []byte) error
	// Clear elimina el registro. Idempotente.
	Clear() error
}
