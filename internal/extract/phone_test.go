package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare mobile", "3001234567", "573001234567"},
		{"spaced", "300 123 4567", "573001234567"},
		{"dashed", "300-123-45-67", "573001234567"},
		{"already prefixed", "573001234567", "573001234567"},
		{"plus prefixed", "+57 300 1234567", "573001234567"},
		{"landline passes through", "6012345678", "6012345678"},
		{"short passes through", "12345", "12345"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw))
		})
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	inputs := []string{"3001234567", "573001234567", "+57 310 555 0000", "6012345678"}
	for _, in := range inputs {
		once := NormalizePhone(in)
		assert.Equal(t, once, NormalizePhone(once), "input %q", in)
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	in := "linea uno\r\nlinea\tdos   con  espacios\n\n\n\nlinea tres  \n"
	want := "linea uno\nlinea dos con espacios\n\nlinea tres"
	assert.Equal(t, want, Normalize(in))
}

func TestFoldAccents(t *testing.T) {
	assert.Equal(t, "bogota", foldAccents("Bogotá"))
	assert.Equal(t, "medellin", foldAccents("MEDELLÍN"))
	assert.Equal(t, "itagui", foldAccents("Itagüí"))
}
