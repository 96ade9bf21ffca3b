// Package text limpia texto libre capturado por usuarios (conceptos, notas, descripciones).
package text

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Política de sanitización HTML (muy restrictiva): elimina cualquier etiqueta.
var htmlPolicy = bluemonday.StrictPolicy()

// Sanitize elimina etiquetas HTML y espacios sobrantes.
// StrictPolicy escapa entidades (& → &amp;); se revierten para guardar texto plano.
func Sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(htmlPolicy.Sanitize(s)))
}
