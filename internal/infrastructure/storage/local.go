// Package storage implementa el almacenamiento local de documentos adjuntos
// (PDF de soporte de cosecha).
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/usecase"
)

// LocalStore guarda los archivos en un directorio del filesystem. El nombre
// final lleva un prefijo UUID para no colisionar entre compañías ni con
// cargas repetidas del mismo archivo.
type LocalStore struct {
	dir string
}

var _ usecase.ArchivoStore = (*LocalStore)(nil)

// NewLocalStore crea el directorio si no existe y devuelve el store.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save escribe el contenido y devuelve la ruta relativa del archivo guardado.
func (s *LocalStore) Save(ctx context.Context, nombre string, contenido io.Reader) (string, error) {
	// Solo el nombre base: el cliente no decide rutas.
	final := uuid.New().String() + "_" + filepath.Base(nombre)
	ruta := filepath.Join(s.dir, final)

	f, err := os.Create(ruta)
	if err != nil {
		return "", fmt.Errorf("storage: crear archivo: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(f, contenido); err != nil {
		_ = os.Remove(ruta)
		return "", fmt.Errorf("storage: escribir archivo: %w", err)
	}
	return ruta, nil
}
