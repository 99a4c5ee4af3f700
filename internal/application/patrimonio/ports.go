package patrimonio

import (
	"context"

	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
)

// TxRunner executa fn dentro de uma transação de BD, passando repositórios
// atados a essa tx. Cada evento de negócio grava seu próprio registro, a
// atualização do bem e as linhas de auditoria de forma atômica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		bemRepo repository.BemRepository,
		auditoriaRepo repository.AuditoriaRepository,
		movimentacaoRepo repository.MovimentacaoRepository,
		manutencaoRepo repository.ManutencaoRepository,
		baixaRepo repository.BaixaRepository,
	) error) error
}
