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
	"github.com/shopspring/decimal"
)

// ManutencaoUseCase processador de eventos de manutenção. A abertura leva o
// bem a EM_MANUTENCAO; fixar a data de fim pela primeira vez devolve a EM_USO.
// Abertura sobre bem BAIXADO é rejeitada.
type ManutencaoUseCase struct {
	txRunner       TxRunner
	bemRepo        repository.BemRepository
	manutencaoRepo repository.ManutencaoRepository
	fornecedorRepo repository.FornecedorRepository
}

// NewManutencaoUseCase constrói o caso de uso.
func NewManutencaoUseCase(
	txRunner TxRunner,
	bemRepo repository.BemRepository,
	manutencaoRepo repository.ManutencaoRepository,
	fornecedorRepo repository.FornecedorRepository,
) *ManutencaoUseCase {
	return &ManutencaoUseCase{
		txRunner:       txRunner,
		bemRepo:        bemRepo,
		manutencaoRepo: manutencaoRepo,
		fornecedorRepo: fornecedorRepo,
	}
}

// Abrir grava a manutenção e transiciona o bem para EM_MANUTENCAO na mesma
// transação.
func (uc *ManutencaoUseCase) Abrir(ctx context.Context, atorID string, in dto.AbrirManutencaoRequest) (*dto.ManutencaoResponse, error) {
	if in.BemID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Tipo != entity.ManutencaoPreventiva && in.Tipo != entity.ManutencaoCorretiva {
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
		return nil, domain.ErrTransicaoInvalida
	}
	if in.FornecedorID != nil {
		fornecedor, err := uc.fornecedorRepo.GetByID(*in.FornecedorID)
		if err != nil {
			return nil, err
		}
		if fornecedor == nil {
			return nil, domain.ErrNaoEncontrado
		}
	}

	now := time.Now()
	inicio := now
	if in.DataInicio != nil {
		inicio = *in.DataInicio
	}
	custo := decimal.Zero
	if in.Custo != nil {
		custo = *in.Custo
	}
	m := &entity.Manutencao{
		ID:           uuid.New().String(),
		BemID:        bem.ID,
		Tipo:         in.Tipo,
		DataInicio:   inicio,
		Custo:        custo,
		FornecedorID: in.FornecedorID,
		Observacoes:  in.Observacoes,
		CriadoEm:     now,
		AtualizadoEm: now,
		CriadoPor:    atorID,
	}

	err = uc.txRunner.Run(ctx, func(
		bemRepo repository.BemRepository,
		auditoriaRepo repository.AuditoriaRepository,
		_ repository.MovimentacaoRepository,
		manutencaoRepo repository.ManutencaoRepository,
		_ repository.BaixaRepository,
	) error {
		if err := manutencaoRepo.Create(m); err != nil {
			return err
		}
		return aplicarEvento(bemRepo, auditoriaRepo, bem, dompatrimonio.EventoManutencaoAberta, nil, atorID, now)
	})
	if err != nil {
		return nil, err
	}
	return toManutencaoResponse(m), nil
}

// Atualizar aplica o patch sobre a mesma linha. Se a data de fim está sendo
// fixada pela primeira vez, o bem volta a EM_USO na mesma transação; patches
// posteriores só sobrescrevem campos.
func (uc *ManutencaoUseCase) Atualizar(ctx context.Context, id, atorID string, in dto.AtualizarManutencaoRequest) (*dto.ManutencaoResponse, error) {
	m, err := uc.manutencaoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.FornecedorID != nil {
		fornecedor, err := uc.fornecedorRepo.GetByID(*in.FornecedorID)
		if err != nil {
			return nil, err
		}
		if fornecedor == nil {
			return nil, domain.ErrNaoEncontrado
		}
		m.FornecedorID = in.FornecedorID
	}

	primeiraConclusao := m.DataFim == nil && in.DataFim != nil
	if in.DataFim != nil {
		m.DataFim = in.DataFim
	}
	if in.Custo != nil {
		m.Custo = *in.Custo
	}
	if in.Observacoes != nil {
		m.Observacoes = *in.Observacoes
	}
	now := time.Now()
	m.AtualizadoEm = now

	err = uc.txRunner.Run(ctx, func(
		bemRepo repository.BemRepository,
		auditoriaRepo repository.AuditoriaRepository,
		_ repository.MovimentacaoRepository,
		manutencaoRepo repository.ManutencaoRepository,
		_ repository.BaixaRepository,
	) error {
		if err := manutencaoRepo.Update(m); err != nil {
			return err
		}
		if !primeiraConclusao {
			return nil
		}
		bem, err := bemRepo.GetByID(m.BemID)
		if err != nil {
			return err
		}
		if bem == nil {
			return domain.ErrNaoEncontrado
		}
		return aplicarEvento(bemRepo, auditoriaRepo, bem, dompatrimonio.EventoManutencaoConcluida, nil, atorID, now)
	})
	if err != nil {
		return nil, err
	}
	return toManutencaoResponse(m), nil
}

// ListarPorBem lista as manutenções de um bem.
func (uc *ManutencaoUseCase) ListarPorBem(bemID string) ([]dto.ManutencaoResponse, error) {
	manutencoes, err := uc.manutencaoRepo.ListByBem(bemID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ManutencaoResponse, 0, len(manutencoes))
	for _, m := range manutencoes {
		out = append(out, *toManutencaoResponse(m))
	}
	return out, nil
}

func toManutencaoResponse(m *entity.Manutencao) *dto.ManutencaoResponse {
	return &dto.ManutencaoResponse{
		ID:           m.ID,
		BemID:        m.BemID,
		Tipo:         m.Tipo,
		DataInicio:   m.DataInicio,
		DataFim:      m.DataFim,
		Custo:        m.Custo,
		FornecedorID: m.FornecedorID,
		Observacoes:  m.Observacoes,
		CriadoPor:    m.CriadoPor,
	}
}
