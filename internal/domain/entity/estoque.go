package entity

import "time"

// ItemEstoque representa a quantidade atual em estoque de um tipo de produto.
// Existe no máximo um item por TipoID. Quantidade é um inteiro estrito em todo
// o sistema; a aritmética de movimentos nunca passa por texto.
//
// Quantidade só é mutada pelo serviço de doações (movimentos). O update direto
// do item existe como correção administrativa e não passa pelo ledger.
type ItemEstoque struct {
	ID            string
	TipoID        string
	Quantidade    int
	TipoDescricao string // preenchido pelo JOIN com tipos nas leituras
	AtualizadoEm  time.Time
}
