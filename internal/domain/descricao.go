package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// NormalizeDescricao reduz uma descrição à forma canônica usada na regra de
// unicidade de tipos: espaços das bordas removidos e case folding Unicode.
// "Camiseta " e "camiseta" normalizam para o mesmo valor.
func NormalizeDescricao(s string) string {
	return fold.String(strings.TrimSpace(s))
}

// MesmaDescricao compara duas descrições sob a regra de unicidade.
func MesmaDescricao(a, b string) bool {
	return NormalizeDescricao(a) == NormalizeDescricao(b)
}
