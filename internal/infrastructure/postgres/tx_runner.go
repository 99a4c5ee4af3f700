package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Patrimonio-api/internal/application/inventario"
	"github.com/jhoicas/Patrimonio-api/internal/application/patrimonio"
	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
)

var _ patrimonio.TxRunner = (*TxRunner)(nil)
var _ inventario.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL com
// repositórios atados à tx. Commit no sucesso, Rollback em qualquer erro.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação com os repositórios do núcleo de ciclo de vida:
// registro do evento + atualização do bem + linhas de auditoria são atômicos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	bemRepo repository.BemRepository,
	auditoriaRepo repository.AuditoriaRepository,
	movimentacaoRepo repository.MovimentacaoRepository,
	manutencaoRepo repository.ManutencaoRepository,
	baixaRepo repository.BaixaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewBemRepository(tx),
		NewAuditoriaRepository(tx),
		NewMovimentacaoRepository(tx),
		NewManutencaoRepository(tx),
		NewBaixaRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunInventario inicia uma transação com os repositórios de inventário (para
// a abertura com inscrição em massa).
func (r *TxRunner) RunInventario(ctx context.Context, fn func(
	inventarioRepo repository.InventarioRepository,
	bemRepo repository.BemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInventarioRepository(tx), NewBemRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
