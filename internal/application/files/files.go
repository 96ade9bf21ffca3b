// Package files define el puerto de almacenamiento de adjuntos y la limpieza de mejor esfuerzo.
package files

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
)

// Tipos de archivo aceptados por campo.
const (
	KindPDF         = "pdf"
	KindXML         = "xml"
	KindSpreadsheet = "spreadsheet" // xlsx o csv
	KindQuotation   = "quotation"   // pdf, xlsx o csv
)

// Store guarda y elimina adjuntos. Save devuelve el nombre generado que se persiste en la fila.
// Save devuelve domain.ErrInvalidFile si el archivo no corresponde al tipo pedido.
type Store interface {
	Save(ctx context.Context, kind string, up dto.FileUpload) (string, error)
	Remove(ctx context.Context, name string) error
}

// CleanupResult resultado de eliminar un adjunto; Err nil indica éxito.
type CleanupResult struct {
	Name string
	Err  error
}

// Cleanup elimina los archivos indicados sin fallar: cada error se registra y se devuelve en el resultado.
// Nombres vacíos se ignoran.
func Cleanup(ctx context.Context, store Store, names ...string) []CleanupResult {
	results := make([]CleanupResult, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		err := store.Remove(ctx, name)
		if err != nil {
			log.Warn().Err(err).Str("file", name).Msg("no se pudo eliminar el archivo adjunto")
		}
		results = append(results, CleanupResult{Name: name, Err: err})
	}
	return results
}
