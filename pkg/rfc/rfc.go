// Package rfc valida el Registro Federal de Contribuyentes (SAT, México).
package rfc

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// valores de cada carácter para el cálculo del dígito verificador (índice = valor).
const dictionary = "0123456789ABCDEFGHIJKLMN&OPQRSTUVWXYZ Ñ"

var pattern = regexp.MustCompile(`^([A-ZÑ&]{3,4})(\d{6})([A-Z\d]{2})([A\d])$`)

// RFC genéricos del SAT (público en general y extranjeros) sin dígito verificador válido.
var generic = map[string]bool{
	"XAXX010101000": true,
	"XEXX010101000": true,
}

// Normalize quita espacios y guiones y pasa a mayúsculas.
func Normalize(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "").Replace(s)
}

// Validate comprueba formato, fecha y dígito verificador.
// Acepta 12 caracteres (persona moral) o 13 (persona física).
func Validate(s string) error {
	r := Normalize(s)
	if generic[r] {
		return nil
	}
	m := pattern.FindStringSubmatch(r)
	if m == nil {
		return fmt.Errorf("rfc: formato inválido %q", s)
	}
	if _, err := time.Parse("060102", m[2]); err != nil {
		return fmt.Errorf("rfc: fecha inválida %q", m[2])
	}
	expected, err := CheckDigit(r)
	if err != nil {
		return err
	}
	runes := []rune(r)
	if got := runes[len(runes)-1]; got != expected {
		return fmt.Errorf("rfc: dígito verificador inválido: esperado %c, recibido %c", expected, got)
	}
	return nil
}

// CheckDigit calcula el dígito verificador. s es un RFC completo (12 o 13 caracteres,
// el último se ignora) o la base de 11 caracteres de una persona moral.
func CheckDigit(s string) (rune, error) {
	runes := []rune(Normalize(s))
	switch len(runes) {
	case 12, 13:
		runes = runes[:len(runes)-1]
	}
	if len(runes) == 11 {
		runes = append([]rune{' '}, runes...)
	}
	if len(runes) != 12 {
		return 0, fmt.Errorf("rfc: longitud inválida (%d)", len(runes))
	}
	dict := []rune(dictionary)
	var sum int
	for i, c := range runes {
		v := indexOf(dict, c)
		if v < 0 {
			return 0, fmt.Errorf("rfc: carácter no permitido %q", c)
		}
		sum += v * (13 - i)
	}
	switch d := 11 - sum%11; d {
	case 11:
		return '0', nil
	case 10:
		return 'A', nil
	default:
		return rune('0' + d), nil
	}
}

func indexOf(dict []rune, c rune) int {
	for i, r := range dict {
		if r == c {
			return i
		}
	}
	return -1
}
