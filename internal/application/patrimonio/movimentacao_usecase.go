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

// MovimentacaoUseCase processador de eventos de movimentação: valida, grava o
// registro imutável e aplica a transição do bem, tudo em uma transação.
type MovimentacaoUseCase struct {
	txRunner         TxRunner
	bemRepo          repository.BemRepository
	setorRepo        repository.SetorRepository
	movimentacaoRepo repository.MovimentacaoRepository
}

// NewMovimentacaoUseCase constrói o caso de uso.
func NewMovimentacaoUseCase(
	txRunner TxRunner,
	bemRepo repository.BemRepository,
	setorRepo repository.SetorRepository,
	movimentacaoRepo repository.MovimentacaoRepository,
) *MovimentacaoUseCase {
	return &MovimentacaoUseCase{
		txRunner:         txRunner,
		bemRepo:          bemRepo,
		setorRepo:        setorRepo,
		movimentacaoRepo: movimentacaoRepo,
	}
}

// Registrar valida e grava um evento de movimentação.
// Regras: o bem deve existir e não estar BAIXADO (ErrTransicaoInvalida);
// TRANSFERENCIA exige setor de destino existente; EMPRESTIMO deixa o bem
// OCIOSO; DEVOLUCAO devolve a EM_USO. O registro do evento, a atualização do
// bem e as linhas de auditoria são gravados na mesma transação.
func (uc *MovimentacaoUseCase) Registrar(ctx context.Context, atorID string, in dto.RegistrarMovimentacaoRequest) (*dto.MovimentacaoResponse, error) {
	if in.BemID == "" || !entity.TipoMovimentacaoValido(in.Tipo) {
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

	var evento dompatrimonio.Evento
	var setorDestinoID *string
	switch in.Tipo {
	case entity.MovimentacaoTransferencia:
		evento = dompatrimonio.EventoTransferencia
		if in.SetorDestinoID == nil || *in.SetorDestinoID == "" {
			return nil, domain.ErrEntradaInvalida
		}
		destino, err := uc.setorRepo.GetByID(*in.SetorDestinoID)
		if err != nil {
			return nil, err
		}
		if destino == nil {
			return nil, domain.ErrNaoEncontrado
		}
		setorDestinoID = in.SetorDestinoID
	case entity.MovimentacaoEmprestimo:
		evento = dompatrimonio.EventoEmprestimo
	case entity.MovimentacaoDevolucao:
		evento = dompatrimonio.EventoDevolucao
	}

	now := time.Now()
	origem := bem.SetorID
	mov := &entity.Movimentacao{
		ID:                    uuid.New().String(),
		BemID:                 bem.ID,
		Tipo:                  in.Tipo,
		SetorOrigemID:         &origem,
		SetorDestinoID:        setorDestinoID,
		DataMovimentacao:      now,
		DataPrevistaDevolucao: in.DataPrevistaDevolucao,
		Observacoes:           in.Observacoes,
		CriadoEm:              now,
		CriadoPor:             atorID,
	}

	err = uc.txRunner.Run(ctx, func(
		bemRepo repository.BemRepository,
		auditoriaRepo repository.AuditoriaRepository,
		movimentacaoRepo repository.MovimentacaoRepository,
		_ repository.ManutencaoRepository,
		_ repository.BaixaRepository,
	) error {
		if err := movimentacaoRepo.Create(mov); err != nil {
			return err
		}
		return aplicarEvento(bemRepo, auditoriaRepo, bem, evento, setorDestinoID, atorID, now)
	})
	if err != nil {
		return nil, err
	}
	return toMovimentacaoResponse(mov), nil
}

// Listar lista movimentações em ordem decrescente de data.
func (uc *MovimentacaoUseCase) Listar(page dto.PageRequest) (*dto.MovimentacaoListResponse, error) {
	page.Normalizar()
	movs, err := uc.movimentacaoRepo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := &dto.MovimentacaoListResponse{
		Movimentacoes: make([]dto.MovimentacaoResponse, 0, len(movs)),
		Meta:          dto.PageResponse{Page: page.Page, Limit: page.Limit},
	}
	for _, m := range movs {
		out.Movimentacoes = append(out.Movimentacoes, *toMovimentacaoResponse(m))
	}
	return out, nil
}

// ListarPorBem lista as movimentações de um bem.
func (uc *MovimentacaoUseCase) ListarPorBem(bemID string) ([]dto.MovimentacaoResponse, error) {
	bem, err := uc.bemRepo.GetByID(bemID)
	if err != nil {
		return nil, err
	}
	if bem == nil {
		return nil, domain.ErrNaoEncontrado
	}
	movs, err := uc.movimentacaoRepo.ListByBem(bemID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimentacaoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, *toMovimentacaoResponse(m))
	}
	return out, nil
}

func toMovimentacaoResponse(m *entity.Movimentacao) *dto.MovimentacaoResponse {
	return &dto.MovimentacaoResponse{
		ID:                    m.ID,
		BemID:                 m.BemID,
		Tipo:                  m.Tipo,
		SetorOrigemID:         m.SetorOrigemID,
		SetorDestinoID:        m.SetorDestinoID,
		DataMovimentacao:      m.DataMovimentacao,
		DataPrevistaDevolucao: m.DataPrevistaDevolucao,
		Observacoes:           m.Observacoes,
		CriadoPor:             m.CriadoPor,
	}
}
