// Package textutil normaliza texto para búsqueda: los nombres de producto se
// capturan con acentos de forma inconsistente en piso ("Tapón" vs "Tapon"),
// así que las comparaciones pliegan mayúsculas y marcas diacríticas.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold devuelve s en minúsculas y sin marcas diacríticas.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// ContainsFold indica si s contiene substr ignorando mayúsculas y acentos.
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
