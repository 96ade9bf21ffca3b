// Package storage guarda los adjuntos en el sistema de archivos local.
//
// Los nombres se generan (uuid + extensión); el nombre original del cliente solo
// aporta la extensión. El tipo se comprueba por extensión y por contenido.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/files"
	"github.com/jhoicas/Gestion-api/internal/domain"
)

var _ files.Store = (*LocalStore)(nil)

// extensiones aceptadas por tipo de campo.
var allowed = map[string][]string{
	files.KindPDF:         {".pdf"},
	files.KindXML:         {".xml"},
	files.KindSpreadsheet: {".xlsx", ".csv"},
	files.KindQuotation:   {".pdf", ".xlsx", ".csv"},
}

// LocalStore implementa files.Store sobre un directorio.
type LocalStore struct {
	dir string
}

// NewLocalStore crea el directorio si no existe.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save valida el archivo contra kind y lo escribe con un nombre nuevo.
func (s *LocalStore) Save(_ context.Context, kind string, up dto.FileUpload) (string, error) {
	ext := strings.ToLower(filepath.Ext(up.Filename))
	if !accepts(kind, ext) {
		return "", fmt.Errorf("%w: %q no es válido para %s", domain.ErrInvalidFile, up.Filename, kind)
	}
	if len(up.Data) == 0 {
		return "", fmt.Errorf("%w: %q está vacío", domain.ErrInvalidFile, up.Filename)
	}
	if err := checkContent(ext, up.Data); err != nil {
		return "", fmt.Errorf("%w: %q: %v", domain.ErrInvalidFile, up.Filename, err)
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), up.Data, 0o644); err != nil {
		return "", fmt.Errorf("storage: escribir %s: %w", name, err)
	}
	log.Debug().Str("file", name).Str("original", up.Filename).Int("bytes", len(up.Data)).Msg("adjunto guardado")
	return name, nil
}

// Remove elimina el archivo; si ya no existe no es error.
func (s *LocalStore) Remove(_ context.Context, name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: eliminar %s: %w", name, err)
	}
	return nil
}

// Path resuelve un nombre almacenado a su ruta. Nombres con separadores o
// componentes relativos devuelven domain.ErrNotFound.
func (s *LocalStore) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") || strings.ContainsAny(name, `/\`) {
		return "", domain.ErrNotFound
	}
	return filepath.Join(s.dir, name), nil
}

// Open devuelve la ruta de un archivo existente para servirlo.
func (s *LocalStore) Open(name string) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", domain.ErrNotFound
	}
	return path, nil
}

func accepts(kind, ext string) bool {
	for _, e := range allowed[kind] {
		if e == ext {
			return true
		}
	}
	return false
}

func checkContent(ext string, data []byte) error {
	sniffed := http.DetectContentType(data)
	switch ext {
	case ".pdf":
		if sniffed != "application/pdf" {
			return fmt.Errorf("contenido %s, se esperaba PDF", sniffed)
		}
	case ".xlsx":
		if sniffed != "application/zip" {
			return fmt.Errorf("contenido %s, se esperaba XLSX", sniffed)
		}
	case ".csv":
		if !strings.HasPrefix(sniffed, "text/plain") {
			return fmt.Errorf("contenido %s, se esperaba texto", sniffed)
		}
	case ".xml":
		doc := etree.NewDocument()
		if err := doc.ReadFromBytes(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))); err != nil {
			return fmt.Errorf("XML mal formado: %w", err)
		}
		if doc.Root() == nil {
			return errors.New("XML sin elemento raíz")
		}
	}
	return nil
}
