package inventario

import (
	"context"

	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação de BD com repositórios atados a
// ela. Usado na abertura em massa: criação do inventário e inscrição de todos
// os bens ativos, em lotes, na mesma transação.
type TxRunner interface {
	RunInventario(ctx context.Context, fn func(
		inventarioRepo repository.InventarioRepository,
		bemRepo repository.BemRepository,
	) error) error
}

// LinhaRelatorio uma linha do relatório de fechamento.
type LinhaRelatorio struct {
	NumeroPatrimonial string
	Descricao         string
	Classificacao     string
	Divergencia       string
}

// RelatorioPDFGenerator porta de saída para o relatório de fechamento em PDF.
type RelatorioPDFGenerator interface {
	GerarRelatorioInventario(inv *entity.Inventario, linhas []LinhaRelatorio) ([]byte, error)
}
