package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gestion-api/internal/domain/text"
)

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"  Renta oficina  ":              "Renta oficina",
		"<b>Pago</b> a Juan & Co":        "Pago a Juan & Co",
		"<script>alert(1)</script>Nota":  "Nota",
		"":                               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, text.Sanitize(in), "entrada %q", in)
	}
}
