package rfc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/pkg/rfc"
)

func TestValidate_Validos(t *testing.T) {
	for _, s := range []string{
		"WMT970714R10",
		"TME840315KT6",
		"GODE561231GR8",
		"gode-561231-gr8",
		"XAXX010101000",
	} {
		assert.NoError(t, rfc.Validate(s), s)
	}
}

func TestValidate_Invalidos(t *testing.T) {
	for _, s := range []string{
		"WMT970714R11",
		"WMT971314R10",
		"W1T970714R10",
		"GODE561231GR",
		"",
	} {
		assert.Error(t, rfc.Validate(s), s)
	}
}

func TestCheckDigit(t *testing.T) {
	d, err := rfc.CheckDigit("CFE370814QI")
	require.NoError(t, err)
	assert.Equal(t, '0', d)

	d, err = rfc.CheckDigit("GODE561231GR8")
	require.NoError(t, err)
	assert.Equal(t, '8', d)
}
