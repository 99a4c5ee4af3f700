package patrimonio

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/domain"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
	dompatrimonio "github.com/jhoicas/Patrimonio-api/internal/domain/patrimonio"
	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
)

// BaixaUseCase processador do evento terminal. O pré-check de "já existe
// baixa" é só atalho de UX: a garantia real contra baixa dupla concorrente é a
// constraint única em bem_id, cuja violação o adaptador traduz para
// ErrDuplicado dentro da mesma transação que aplicaria a transição.
type BaixaUseCase struct {
	txRunner  TxRunner
	bemRepo   repository.BemRepository
	baixaRepo repository.BaixaRepository
}

// NewBaixaUseCase constrói o caso de uso.
func NewBaixaUseCase(txRunner TxRunner, bemRepo repository.BemRepository, baixaRepo repository.BaixaRepository) *BaixaUseCase {
	return &BaixaUseCase{txRunner: txRunner, bemRepo: bemRepo, baixaRepo: baixaRepo}
}

// Registrar grava a baixa e transiciona o bem para BAIXADO na mesma
// transação. ErrConflito se o bem já está BAIXADO ou já tem baixa registrada.
func (uc *BaixaUseCase) Registrar(ctx context.Context, atorID string, in dto.RegistrarBaixaRequest) (*dto.BaixaResponse, error) {
	if in.BemID == "" || !entity.MotivoBaixaValido(in.Motivo) {
		return nil, domain.ErrEntradaInvalida
	}

	bem, err := uc.bemRepo.GetByID(in.BemID)
	if err != nil {
		return nil, err
	}
	if bem == nil || !bem.Ativo {
		return nil, domain.ErrNaoEncontrado
	}
	if bem.Situacao == entity.SituacaoBaixado {
		return nil, domain.ErrConflito
	}
	existente, err := uc.baixaRepo.GetByBem(in.BemID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrConflito
	}

	now := time.Now()
	dataBaixa := now
	if in.DataBaixa != nil {
		dataBaixa = *in.DataBaixa
	}
	baixa := &entity.Baixa{
		ID:             uuid.New().String(),
		BemID:          bem.ID,
		Motivo:         in.Motivo,
		DataBaixa:      dataBaixa,
		ValorRealizado: in.ValorRealizado,
		Observacoes:    in.Observacoes,
		CriadoEm:       now,
		CriadoPor:      atorID,
	}

	err = uc.txRunner.Run(ctx, func(
		bemRepo repository.BemRepository,
		auditoriaRepo repository.AuditoriaRepository,
		_ repository.MovimentacaoRepository,
		_ repository.ManutencaoRepository,
		baixaRepo repository.BaixaRepository,
	) error {
		if err := baixaRepo.Create(baixa); err != nil {
			return err
		}
		return aplicarEvento(bemRepo, auditoriaRepo, bem, dompatrimonio.EventoBaixa, nil, atorID, now)
	})
	if err != nil {
		return nil, err
	}
	return toBaixaResponse(baixa), nil
}

// BuscarPorBem obtém a baixa de um bem, se existir.
func (uc *BaixaUseCase) BuscarPorBem(bemID string) (*dto.BaixaResponse, error) {
	bem, err := uc.bemRepo.GetByID(bemID)
	if err != nil {
		return nil, err
	}
	if bem == nil {
		return nil, domain.ErrNaoEncontrado
	}
	baixa, err := uc.baixaRepo.GetByBem(bemID)
	if err != nil {
		return nil, err
	}
	if baixa == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return toBaixaResponse(baixa), nil
}

func toBaixaResponse(b *entity.Baixa) *dto.BaixaResponse {
	return &dto.BaixaResponse{
		ID:             b.ID,
		BemID:          b.BemID,
		Motivo:         b.Motivo,
		DataBaixa:      b.DataBaixa,
		ValorRealizado: b.ValorRealizado,
		Observacoes:    b.Observacoes,
		CriadoPor:      b.CriadoPor,
	}
}
