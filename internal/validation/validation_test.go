package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		{"formatted with 11 digits", "123.456.789-00", true},
		{"bare 11 digits", "12345678900", true},
		{"10 digits", "1234567890", false},
		{"12 digits", "123456789001", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidCPF(tt.cpf))
		})
	}
}

func TestValidCNPJ(t *testing.T) {
	tests := []struct {
		name  string
		cnpj  string
		valid bool
	}{
		{"formatted with 14 digits", "12.345.678/0001-95", true},
		{"bare 14 digits", "12345678000195", true},
		{"13 digits", "1234567800019", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidCNPJ(tt.cnpj))
		})
	}
}

func TestValidCEP(t *testing.T) {
	tests := []struct {
		name  string
		cep   string
		valid bool
	}{
		{"formatted", "01310-100", true},
		{"bare 8 digits", "01310100", true},
		{"7 digits", "0131010", false},
		{"letters", "01310-abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidCEP(tt.cep))
		})
	}
}

func TestValidUF(t *testing.T) {
	tests := []struct {
		name  string
		uf    string
		valid bool
	}{
		{"uppercase", "SP", true},
		{"lowercase", "sp", true},
		{"too long", "SPX", false},
		{"digits", "12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidUF(tt.uf))
		})
	}
}
