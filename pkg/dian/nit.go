// Package dian reúne reglas de la DIAN (Colombia) aplicables a los datos de proveedores.
package dian

import (
	"fmt"
	"unicode"
)

// nitWeights pesos del módulo 11 (Orden Administrativa 4 de 1989) para los 9 dígitos base del NIT.
var nitWeights = [9]int{41, 37, 29, 23, 19, 17, 13, 7, 3}

// ValidateNITVerificationDigit comprueba que taxID traiga 9 dígitos base más el dígito de verificación
// correcto. Acepta puntos y guiones: "900123456-8", "900.123.456-8" o "9001234568".
func ValidateNITVerificationDigit(taxID string) error {
	digits := extractDigits(taxID)
	if len(digits) != 10 {
		return fmt.Errorf("dian: el NIT debe tener 9 dígitos más el dígito de verificación, se encontraron %d", len(digits))
	}
	expected := verificationDigit(digits[:9])
	if digits[9] != expected {
		return fmt.Errorf("dian: dígito de verificación inválido: esperado %c, recibido %c", expected, digits[9])
	}
	return nil
}

// ComputeNITVerificationDigit calcula el dígito de verificación de los 9 primeros dígitos de taxID.
func ComputeNITVerificationDigit(taxID string) (byte, error) {
	digits := extractDigits(taxID)
	if len(digits) < 9 {
		return 0, fmt.Errorf("dian: se requieren 9 dígitos para calcular el dígito de verificación, se encontraron %d", len(digits))
	}
	return verificationDigit(digits[:9]), nil
}

// FormatNIT devuelve el NIT como "XXXXXXXXX-D", calculando el dígito si no viene.
func FormatNIT(taxID string) (string, error) {
	digits := extractDigits(taxID)
	switch len(digits) {
	case 9:
		return fmt.Sprintf("%s-%c", digits, verificationDigit(digits)), nil
	case 10:
		if err := ValidateNITVerificationDigit(taxID); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s-%c", digits[:9], digits[9]), nil
	default:
		return "", fmt.Errorf("dian: longitud de NIT inválida: %d dígitos", len(digits))
	}
}

func verificationDigit(base []byte) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * nitWeights[i]
	}
	r := sum % 11
	if r < 2 {
		return byte('0' + r)
	}
	return byte('0' + (11 - r))
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			out = append(out, byte(r))
		}
	}
	return out
}
