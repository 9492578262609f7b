package validation

import (
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// stripSeparators removes the usual Brazilian document punctuation so only
// the digits are counted.
func stripSeparators(s string) string {
	return strings.NewReplacer(".", "", "-", "", "/", "").Replace(s)
}

// ValidCPF reports whether the value has exactly 11 digits once the
// "."/"-"/"/" separators are removed.
func ValidCPF(cpf string) bool {
	return len(stripSeparators(cpf)) == 11
}

// ValidCNPJ reports whether the value has exactly 14 digits once the
// "."/"-"/"/" separators are removed.
func ValidCNPJ(cnpj string) bool {
	return len(stripSeparators(cnpj)) == 14
}

// ValidCEP reports whether the value is exactly 8 digits once the
// "."/"-" separators are removed.
func ValidCEP(cep string) bool {
	cleaned := strings.NewReplacer(".", "", "-", "").Replace(cep)
	if len(cleaned) != 8 {
		return false
	}
	for _, r := range cleaned {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ValidUF reports whether the value is a 2-letter state code.
func ValidUF(uf string) bool {
	if len(uf) != 2 {
		return false
	}
	for _, r := range uf {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// RegisterCustomValidators wires the cpf, cnpj, cep and uf tags into gin's
// binding validator. Must run before any request is bound.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// a failed registration would silently disable the tag, letting bad
	// documents through; stop at startup instead
	register := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic("validation: failed to register tag " + tag + ": " + err.Error())
		}
	}

	register("cpf", func(fl validator.FieldLevel) bool {
		return ValidCPF(fl.Field().String())
	})
	register("cnpj", func(fl validator.FieldLevel) bool {
		return ValidCNPJ(fl.Field().String())
	})
	register("cep", func(fl validator.FieldLevel) bool {
		return ValidCEP(fl.Field().String())
	})
	register("uf", func(fl validator.FieldLevel) bool {
		return ValidUF(fl.Field().String())
	})
}
