package entity

import "time"

// DoacaoRecebida é um movimento de entrada: aumenta a quantidade do item de
// estoque referenciado no momento da criação. Imutável depois de criada,
// exceto pela remoção.
type DoacaoRecebida struct {
	ID         string
	Quantidade int
	TipoID     string
	EstoqueID  string
	Data       time.Time
}

// DoacaoEnviada é um movimento de saída: diminui a quantidade do item de
// estoque referenciado e fica vinculada a um beneficiário e ao operador que a
// registrou. O conjunto de enviadas de um beneficiário num mesmo dia forma uma
// distribuição (visão derivada, somente leitura).
type DoacaoEnviada struct {
	ID             string
	Quantidade     int
	BeneficiarioID string
	TipoID         string
	EstoqueID      string
	OperadorID     string
	Data           time.Time
}
