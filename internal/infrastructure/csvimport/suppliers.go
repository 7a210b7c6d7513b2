// Package csvimport lee archivos CSV de proveedores exportados desde hojas de cálculo,
// en UTF-8 o en las codificaciones Latin-1 / Windows-1252 habituales en Colombia.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/proveedores-api/internal/application/dto"
)

// Codificaciones soportadas.
const (
	EncodingUTF8        = "utf-8"
	EncodingLatin1      = "iso-8859-1"
	EncodingWindows1252 = "windows-1252"
)

// Alias de cabecera aceptados (en minúsculas) para cada columna.
var headerAliases = map[string]string{
	"name":      "name",
	"nombre":    "name",
	"tax_id":    "tax_id",
	"taxid":     "tax_id",
	"nit":       "tax_id",
	"address":   "address",
	"direccion": "address",
	"dirección": "address",
	"phone":     "phone",
	"telefono":  "phone",
	"teléfono":  "phone",
	"email":     "email",
	"correo":    "email",
}

// Decoder envuelve r según la codificación indicada. Vacío equivale a UTF-8.
func Decoder(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", EncodingUTF8, "utf8":
		return r, nil
	case EncodingLatin1, "latin1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case EncodingWindows1252, "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %q", encoding)
	}
}

// ReadSuppliers lee el CSV (separador coma o punto y coma) y devuelve una solicitud por registro
// con la línea del archivo donde empieza.
// La cabecera es obligatoria y debe incluir nombre y NIT; las columnas desconocidas se ignoran.
// No valida contenido: eso lo hace el caso de uso al crear cada proveedor.
func ReadSuppliers(r io.Reader, encoding string) ([]dto.SupplierImportRow, error) {
	decoded, err := Decoder(r, encoding)
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	content := strings.TrimPrefix(string(raw), "\ufeff")

	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = detectSeparator(content)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("CSV vacío: falta la cabecera")
	}
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, h := range header {
		if col, ok := headerAliases[strings.ToLower(strings.TrimSpace(h))]; ok {
			columns[col] = i
		}
	}
	for _, required := range []string{"name", "tax_id"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("falta la columna %q en la cabecera", required)
		}
	}

	var out []dto.SupplierImportRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// *csv.ParseError ya indica la línea.
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		if blank(record) {
			continue
		}
		field := func(col string) string {
			i, ok := columns[col]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		line, _ := reader.FieldPos(0)
		out = append(out, dto.SupplierImportRow{
			Line:     line,
			Supplier: dto.CreateSupplierRequest{
				Name:    field("name"),
				TaxID:   field("tax_id"),
				Address: field("address"),
				Phone:   field("phone"),
				Email:   field("email"),
			},
		})
	}
	return out, nil
}

// detectSeparator usa ';' si la primera línea lo contiene y no tiene comas (Excel en es-CO).
func detectSeparator(content string) rune {
	first, _, _ := strings.Cut(content, "\n")
	if strings.Contains(first, ";") && !strings.Contains(first, ",") {
		return ';'
	}
	return ','
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
