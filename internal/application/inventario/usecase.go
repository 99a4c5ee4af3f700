// Package inventario implementa o motor de conciliação de inventário: uma
// máquina de estados independente do ciclo de vida dos bens (aberto/fechado,
// item conferido/pendente) que só lê o registro de bens para validar
// existência — nunca altera situação ou setor.
package inventario

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/domain"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/Patrimonio-api/internal/domain/patrimonio"
	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
)

// tamanho dos lotes de inscrição em massa, para limitar memória e duração de
// locks em acervos grandes.
const loteInscricao = 500

// InventarioUseCase casos de uso de campanhas de inventário.
type InventarioUseCase struct {
	txRunner       TxRunner
	inventarioRepo repository.InventarioRepository
	bemRepo        repository.BemRepository
	relatorioPDF   RelatorioPDFGenerator
}

// NewInventarioUseCase constrói o caso de uso.
func NewInventarioUseCase(
	txRunner TxRunner,
	inventarioRepo repository.InventarioRepository,
	bemRepo repository.BemRepository,
	relatorioPDF RelatorioPDFGenerator,
) *InventarioUseCase {
	return &InventarioUseCase{
		txRunner:       txRunner,
		inventarioRepo: inventarioRepo,
		bemRepo:        bemRepo,
		relatorioPDF:   relatorioPDF,
	}
}

// Abrir cria um inventário ABERTO. Tipo GERAL inscreve todos os bens ativos
// como itens na mesma transação, em lotes; MANUAL abre vazio.
func (uc *InventarioUseCase) Abrir(ctx context.Context, atorID string, in dto.AbrirInventarioRequest) (*dto.InventarioResponse, error) {
	if in.Descricao == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Tipo != entity.InventarioGeral && in.Tipo != entity.InventarioManual {
		return nil, domain.ErrEntradaInvalida
	}

	now := time.Now()
	inicio := now
	if in.DataInicio != nil {
		inicio = *in.DataInicio
	}
	inv := &entity.Inventario{
		ID:         uuid.New().String(),
		Descricao:  in.Descricao,
		Tipo:       in.Tipo,
		Status:     entity.InventarioAberto,
		DataInicio: inicio,
		CriadoEm:   now,
		CriadoPor:  atorID,
	}

	totalItens := 0
	err := uc.txRunner.RunInventario(ctx, func(
		inventarioRepo repository.InventarioRepository,
		bemRepo repository.BemRepository,
	) error {
		if err := inventarioRepo.Create(inv); err != nil {
			return err
		}
		if in.Tipo != entity.InventarioGeral {
			return nil
		}
		bens, err := bemRepo.ListAtivos()
		if err != nil {
			return err
		}
		itens := make([]*entity.ItemInventario, 0, len(bens))
		for _, b := range bens {
			itens = append(itens, &entity.ItemInventario{
				ID:           uuid.New().String(),
				InventarioID: inv.ID,
				BemID:        b.ID,
				CriadoEm:     now,
			})
		}
		totalItens = len(itens)
		for i := 0; i < len(itens); i += loteInscricao {
			fim := i + loteInscricao
			if fim > len(itens) {
				fim = len(itens)
			}
			if err := inventarioRepo.CreateItensLote(itens[i:fim]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toInventarioResponse(inv)
	out.TotalItens = totalItens
	return out, nil
}

// Fechar encerra o inventário: FECHADO é terminal, sem reabertura. Uma segunda
// tentativa devolve ErrInventarioFechado e não altera nada.
func (uc *InventarioUseCase) Fechar(id string) (*dto.InventarioResponse, error) {
	inv, err := uc.inventarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if inv.Status == entity.InventarioFechado {
		return nil, domain.ErrInventarioFechado
	}
	now := time.Now()
	if err := uc.inventarioRepo.Fechar(id, now); err != nil {
		return nil, err
	}
	inv.Status = entity.InventarioFechado
	inv.DataFim = &now
	return toInventarioResponse(inv), nil
}

// BuscarPorID obtém um inventário com o total de itens.
func (uc *InventarioUseCase) BuscarPorID(id string) (*dto.InventarioResponse, error) {
	inv, err := uc.inventarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNaoEncontrado
	}
	itens, err := uc.inventarioRepo.ListItens(id)
	if err != nil {
		return nil, err
	}
	out := toInventarioResponse(inv)
	out.TotalItens = len(itens)
	return out, nil
}

// Listar lista inventários.
func (uc *InventarioUseCase) Listar(page dto.PageRequest) ([]dto.InventarioResponse, error) {
	page.Normalizar()
	invs, err := uc.inventarioRepo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventarioResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, *toInventarioResponse(inv))
	}
	return out, nil
}

// AdicionarItem inscreve um bem em um inventário aberto. ErrInventarioFechado
// se já fechado; ErrNaoEncontrado se bem ou inventário não existem;
// ErrDuplicado se o par inventário/bem já existe (pré-check + constraint
// única no banco).
func (uc *InventarioUseCase) AdicionarItem(in dto.AdicionarItemRequest) (*dto.ItemInventarioResponse, error) {
	if in.InventarioID == "" || in.BemID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	inv, err := uc.inventarioRepo.GetByID(in.InventarioID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if inv.Status == entity.InventarioFechado {
		return nil, domain.ErrInventarioFechado
	}
	bem, err := uc.bemRepo.GetByID(in.BemID)
	if err != nil {
		return nil, err
	}
	if bem == nil {
		return nil, domain.ErrNaoEncontrado
	}
	existente, err := uc.inventarioRepo.GetItemByPar(in.InventarioID, in.BemID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}

	item := &entity.ItemInventario{
		ID:           uuid.New().String(),
		InventarioID: in.InventarioID,
		BemID:        in.BemID,
		Divergencia:  in.Divergencia,
		CriadoEm:     time.Now(),
	}
	if err := uc.inventarioRepo.CreateItem(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// ConferirItem registra a conferência física de um item (atualização parcial).
// Marcar conferido=true carimba o usuário que conferiu; chamadas repetidas só
// sobrescrevem os campos. Itens de inventário fechado não são conferíveis.
func (uc *InventarioUseCase) ConferirItem(itemID, atorID string, in dto.ConferirItemRequest) (*dto.ItemInventarioResponse, error) {
	item, err := uc.inventarioRepo.GetItemByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNaoEncontrado
	}
	inv, err := uc.inventarioRepo.GetByID(item.InventarioID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if inv.Status == entity.InventarioFechado {
		return nil, domain.ErrInventarioFechado
	}

	if in.Conferido != nil {
		item.Conferido = *in.Conferido
		if *in.Conferido {
			item.ConferidoPor = &atorID
			if in.DataConferencia == nil && item.DataConferencia == nil {
				now := time.Now()
				item.DataConferencia = &now
			}
		}
	}
	if in.DataConferencia != nil {
		item.DataConferencia = in.DataConferencia
	}
	if in.Divergencia != nil {
		item.Divergencia = in.Divergencia
	}
	if err := uc.inventarioRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// ListarItens lista os itens com a classificação derivada e o progresso da
// campanha.
func (uc *InventarioUseCase) ListarItens(inventarioID string) (*dto.ItensInventarioResponse, error) {
	inv, err := uc.inventarioRepo.GetByID(inventarioID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNaoEncontrado
	}
	itens, err := uc.inventarioRepo.ListItens(inventarioID)
	if err != nil {
		return nil, err
	}
	out := &dto.ItensInventarioResponse{
		Itens: make([]dto.ItemInventarioResponse, 0, len(itens)),
		Total: len(itens),
	}
	conferidos := 0
	for _, item := range itens {
		if item.Conferido {
			conferidos++
		}
		out.Itens = append(out.Itens, *toItemResponse(item))
	}
	out.Progresso = patrimonio.Progresso(len(itens), conferidos)
	return out, nil
}

// Relatorio gera o relatório de fechamento em PDF.
func (uc *InventarioUseCase) Relatorio(inventarioID string) ([]byte, error) {
	inv, err := uc.inventarioRepo.GetByID(inventarioID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNaoEncontrado
	}
	itens, err := uc.inventarioRepo.ListItens(inventarioID)
	if err != nil {
		return nil, err
	}
	linhas := make([]LinhaRelatorio, 0, len(itens))
	for _, item := range itens {
		linha := LinhaRelatorio{
			Classificacao: patrimonio.ClassificarItem(item.Conferido, item.Divergencia),
		}
		if item.Divergencia != nil {
			linha.Divergencia = *item.Divergencia
		}
		if bem, err := uc.bemRepo.GetByID(item.BemID); err == nil && bem != nil {
			linha.NumeroPatrimonial = bem.NumeroPatrimonial
			linha.Descricao = bem.Descricao
		}
		linhas = append(linhas, linha)
	}
	return uc.relatorioPDF.GerarRelatorioInventario(inv, linhas)
}

func toInventarioResponse(inv *entity.Inventario) *dto.InventarioResponse {
	return &dto.InventarioResponse{
		ID:         inv.ID,
		Descricao:  inv.Descricao,
		Tipo:       inv.Tipo,
		Status:     inv.Status,
		DataInicio: inv.DataInicio,
		DataFim:    inv.DataFim,
	}
}

func toItemResponse(item *entity.ItemInventario) *dto.ItemInventarioResponse {
	return &dto.ItemInventarioResponse{
		ID:              item.ID,
		InventarioID:    item.InventarioID,
		BemID:           item.BemID,
		Conferido:       item.Conferido,
		DataConferencia: item.DataConferencia,
		Divergencia:     item.Divergencia,
		ConferidoPor:    item.ConferidoPor,
		Classificacao:   patrimonio.ClassificarItem(item.Conferido, item.Divergencia),
	}
}
