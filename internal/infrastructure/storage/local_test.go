package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/files"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/storage"
)

var (
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n%%EOF")
	xmlBytes = []byte(`<?xml version="1.0" encoding="UTF-8"?><Invoice><ID>F-1</ID></Invoice>`)
)

func newStore(t *testing.T) (*storage.LocalStore, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := storage.NewLocalStore(dir)
	require.NoError(t, err)
	return s, dir
}

func TestSave_GeneraNombreYEscribe(t *testing.T) {
	s, dir := newStore(t)

	name, err := s.Save(context.Background(), files.KindPDF, dto.FileUpload{Filename: "Factura Enero.PDF", Data: pdfBytes})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.NotContains(t, name, "Factura")

	got, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, got)
}

func TestSave_RechazaTipos(t *testing.T) {
	s, dir := newStore(t)
	ctx := context.Background()

	cases := []struct {
		name string
		kind string
		up   dto.FileUpload
	}{
		{"extensión no permitida", files.KindPDF, dto.FileUpload{Filename: "f.exe", Data: pdfBytes}},
		{"pdf falso", files.KindPDF, dto.FileUpload{Filename: "f.pdf", Data: []byte("hola")}},
		{"xml mal formado", files.KindXML, dto.FileUpload{Filename: "f.xml", Data: []byte("<a><b></a>")}},
		{"vacío", files.KindXML, dto.FileUpload{Filename: "f.xml"}},
		{"xlsx que no es zip", files.KindQuotation, dto.FileUpload{Filename: "c.xlsx", Data: []byte("a,b,c")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Save(ctx, tc.kind, tc.up)
			assert.ErrorIs(t, err, domain.ErrInvalidFile)
		})
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "ningún archivo rechazado llega al disco")
}

func TestSave_AceptaXMLyCSV(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, files.KindXML, dto.FileUpload{Filename: "cfdi.xml", Data: xmlBytes})
	assert.NoError(t, err)
	_, err = s.Save(ctx, files.KindQuotation, dto.FileUpload{Filename: "cot.csv", Data: []byte("concepto,monto\nobra,100\n")})
	assert.NoError(t, err)
}

func TestRemoveYOpen(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	name, err := s.Save(ctx, files.KindPDF, dto.FileUpload{Filename: "a.pdf", Data: pdfBytes})
	require.NoError(t, err)

	_, err = s.Open(name)
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, name))
	_, err = s.Open(name)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, s.Remove(ctx, name), "borrar dos veces no falla")
}

func TestPath_RechazaRecorridos(t *testing.T) {
	s, _ := newStore(t)
	for _, name := range []string{"", "../secreto", "a/b.pdf", ".env", `..\x.pdf`} {
		_, err := s.Path(name)
		assert.ErrorIs(t, err, domain.ErrNotFound, name)
	}
}
