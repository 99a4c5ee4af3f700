// Package patrimonio implementa o núcleo do ciclo de vida dos bens: o
// registro (CRUD com diff de campos e auditoria), os processadores de eventos
// (movimentação, manutenção, baixa) e o funil único que aplica transições de
// situação. Toda escrita em situacao/setorId passa pelo mesmo caminho de
// diff+auditoria das edições diretas.
package patrimonio

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/domain"
	"github.com/jhoicas/Patrimonio-api/internal/domain/auditoria"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
	dompatrimonio "github.com/jhoicas/Patrimonio-api/internal/domain/patrimonio"
	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
)

// Nomes de campo do ledger de auditoria. São também as chaves do update
// parcial (o adaptador Postgres traduz para coluna).
const (
	CampoDescricao         = "descricao"
	CampoSetorID           = "setorId"
	CampoSubcategoriaID    = "subcategoriaId"
	CampoValorAquisicao    = "valorAquisicao"
	CampoDataAquisicao     = "dataAquisicao"
	CampoVidaUtilMeses     = "vidaUtilMeses"
	CampoEstadoConservacao = "estadoConservacao"
	CampoSituacao          = "situacao"
	CampoAtivo             = "ativo"
)

const (
	historicoLimitePadrao = 50
	historicoLimiteMaximo = 200
)

// BemUseCase registro de bens: cadastro, consulta, edição com diff de campos e
// exclusão lógica. É o único caminho de escrita sobre a tabela de bens.
type BemUseCase struct {
	bemRepo       repository.BemRepository
	auditoriaRepo repository.AuditoriaRepository
	setorRepo     repository.SetorRepository
	categoriaRepo repository.CategoriaRepository
}

// NewBemUseCase constrói o caso de uso.
func NewBemUseCase(
	bemRepo repository.BemRepository,
	auditoriaRepo repository.AuditoriaRepository,
	setorRepo repository.SetorRepository,
	categoriaRepo repository.CategoriaRepository,
) *BemUseCase {
	return &BemUseCase{
		bemRepo:       bemRepo,
		auditoriaRepo: auditoriaRepo,
		setorRepo:     setorRepo,
		categoriaRepo: categoriaRepo,
	}
}

// Criar cadastra um bem. ErrDuplicado se o número patrimonial já existe entre
// bens não excluídos (comparação exata, case-sensitive); ErrNaoEncontrado se o
// setor ou a subcategoria referenciados não existem.
func (uc *BemUseCase) Criar(atorID string, in dto.CriarBemRequest) (*dto.BemResponse, error) {
	if in.NumeroPatrimonial == "" || in.Descricao == "" || in.SetorID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.EstadoConservacao == "" {
		in.EstadoConservacao = entity.ConservacaoBom
	}
	existente, err := uc.bemRepo.GetByNumeroPatrimonial(in.NumeroPatrimonial)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	setor, err := uc.setorRepo.GetByID(in.SetorID)
	if err != nil {
		return nil, err
	}
	if setor == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.SubcategoriaID != nil {
		sub, err := uc.categoriaRepo.GetSubcategoriaByID(*in.SubcategoriaID)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, domain.ErrNaoEncontrado
		}
	}

	now := time.Now()
	bem := &entity.Bem{
		ID:                uuid.New().String(),
		NumeroPatrimonial: in.NumeroPatrimonial,
		Descricao:         in.Descricao,
		SetorID:           in.SetorID,
		SubcategoriaID:    in.SubcategoriaID,
		ValorAquisicao:    in.ValorAquisicao,
		DataAquisicao:     in.DataAquisicao,
		VidaUtilMeses:     in.VidaUtilMeses,
		EstadoConservacao: in.EstadoConservacao,
		Situacao:          entity.SituacaoEmUso,
		Ativo:             true,
		CriadoEm:          now,
		AtualizadoEm:      now,
	}
	if err := uc.bemRepo.Create(bem); err != nil {
		return nil, err
	}
	return toBemResponse(bem, now), nil
}

// BuscarPorID obtém um bem. ValorAtual é calculado na leitura.
func (uc *BemUseCase) BuscarPorID(id string) (*dto.BemResponse, error) {
	bem, err := uc.bemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bem == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return toBemResponse(bem, time.Now()), nil
}

// Listar lista bens com filtros de setor, situação e busca parcial pelo número
// patrimonial (case-insensitive), com paginação limitada pelo servidor.
func (uc *BemUseCase) Listar(in dto.FiltroBensRequest) (*dto.BemListResponse, error) {
	in.Normalizar()
	if in.Situacao != "" && !entity.SituacaoValida(in.Situacao) {
		return nil, domain.ErrEntradaInvalida
	}
	bens, total, err := uc.bemRepo.List(repository.FiltroBens{
		SetorID:           in.SetorID,
		Situacao:          in.Situacao,
		NumeroPatrimonial: in.NumeroPatrimonial,
		Limit:             in.Limit,
		Offset:            in.Offset(),
	})
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := &dto.BemListResponse{
		Bens: make([]dto.BemResponse, 0, len(bens)),
		Meta: dto.PageResponse{Page: in.Page, Limit: in.Limit, Total: total},
	}
	for _, b := range bens {
		out.Bens = append(out.Bens, *toBemResponse(b, now))
	}
	return out, nil
}

// Atualizar aplica uma edição parcial: só campos presentes e efetivamente
// diferentes são persistidos, e só eles geram linha de auditoria. O número
// patrimonial, se vier no corpo, é ignorado (imutável). Situacao não é
// editável aqui: só muda pelos processadores de eventos.
func (uc *BemUseCase) Atualizar(id, atorID string, in dto.AtualizarBemRequest) (*dto.BemResponse, error) {
	bem, err := uc.bemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bem == nil || !bem.Ativo {
		return nil, domain.ErrNaoEncontrado
	}

	campos := map[string]any{}
	var mudancas []auditoria.Mudanca
	registrar := func(campo string, antigo, novo any) {
		if m, mudou := auditoria.Comparar(campo, antigo, novo); mudou {
			campos[campo] = novo
			mudancas = append(mudancas, m)
		}
	}

	if in.Descricao != nil {
		if *in.Descricao == "" {
			return nil, domain.ErrEntradaInvalida
		}
		registrar(CampoDescricao, bem.Descricao, *in.Descricao)
	}
	if in.SetorID != nil && *in.SetorID != bem.SetorID {
		setor, err := uc.setorRepo.GetByID(*in.SetorID)
		if err != nil {
			return nil, err
		}
		if setor == nil {
			return nil, domain.ErrNaoEncontrado
		}
		registrar(CampoSetorID, bem.SetorID, *in.SetorID)
	}
	if in.SubcategoriaID != nil {
		sub, err := uc.categoriaRepo.GetSubcategoriaByID(*in.SubcategoriaID)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			return nil, domain.ErrNaoEncontrado
		}
		registrar(CampoSubcategoriaID, bem.SubcategoriaID, *in.SubcategoriaID)
	}
	if in.ValorAquisicao != nil {
		registrar(CampoValorAquisicao, bem.ValorAquisicao, *in.ValorAquisicao)
	}
	if in.DataAquisicao != nil {
		registrar(CampoDataAquisicao, bem.DataAquisicao, *in.DataAquisicao)
	}
	if in.VidaUtilMeses != nil {
		registrar(CampoVidaUtilMeses, bem.VidaUtilMeses, *in.VidaUtilMeses)
	}
	if in.EstadoConservacao != nil {
		registrar(CampoEstadoConservacao, bem.EstadoConservacao, *in.EstadoConservacao)
	}

	now := time.Now()
	if err := persistirMudancas(uc.bemRepo, uc.auditoriaRepo, bem.ID, atorID, campos, mudancas, now); err != nil {
		return nil, err
	}
	atualizado, err := uc.bemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toBemResponse(atualizado, now), nil
}

// Excluir marca o bem como inativo (exclusão lógica) e audita a mudança.
// Bens nunca são removidos fisicamente.
func (uc *BemUseCase) Excluir(id, atorID string) error {
	bem, err := uc.bemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if bem == nil || !bem.Ativo {
		return domain.ErrNaoEncontrado
	}
	now := time.Now()
	if err := uc.bemRepo.SoftDelete(id, now); err != nil {
		return err
	}
	return gravarAuditoria(uc.auditoriaRepo, bem.ID, atorID, now, []auditoria.Mudanca{
		{Campo: CampoAtivo, ValorAntigo: "true", ValorNovo: "false"},
	})
}

// Historico lista o ledger do bem em ordem decrescente de data, limitado.
func (uc *BemUseCase) Historico(id string, limit int) ([]dto.RegistroAuditoriaResponse, error) {
	bem, err := uc.bemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bem == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if limit <= 0 {
		limit = historicoLimitePadrao
	}
	if limit > historicoLimiteMaximo {
		limit = historicoLimiteMaximo
	}
	registros, err := uc.auditoriaRepo.ListByBem(id, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RegistroAuditoriaResponse, 0, len(registros))
	for _, r := range registros {
		out = append(out, dto.RegistroAuditoriaResponse{
			Campo:       r.Campo,
			ValorAntigo: r.ValorAntigo,
			ValorNovo:   r.ValorNovo,
			UsuarioID:   r.UsuarioID,
			CriadoEm:    r.CriadoEm,
		})
	}
	return out, nil
}

// aplicarEvento é o funil único de transições: consulta a tabela de regras e
// escreve situacao (e setorId, em transferências) pelo mesmo caminho de
// diff+auditoria das edições diretas. Recebe os repositórios do chamador para
// poder rodar dentro da transação de cada processador de eventos.
func aplicarEvento(
	bemRepo repository.BemRepository,
	auditoriaRepo repository.AuditoriaRepository,
	bem *entity.Bem,
	evento dompatrimonio.Evento,
	setorDestinoID *string,
	atorID string,
	quando time.Time,
) error {
	novaSituacao, err := dompatrimonio.Transicionar(bem.Situacao, evento)
	if err != nil {
		return err
	}

	campos := map[string]any{}
	var mudancas []auditoria.Mudanca
	if m, mudou := auditoria.Comparar(CampoSituacao, bem.Situacao, novaSituacao); mudou {
		campos[CampoSituacao] = novaSituacao
		mudancas = append(mudancas, m)
	}
	if setorDestinoID != nil {
		if m, mudou := auditoria.Comparar(CampoSetorID, bem.SetorID, *setorDestinoID); mudou {
			campos[CampoSetorID] = *setorDestinoID
			mudancas = append(mudancas, m)
		}
	}
	return persistirMudancas(bemRepo, auditoriaRepo, bem.ID, atorID, campos, mudancas, quando)
}

// persistirMudancas grava só os campos alterados e uma linha de auditoria por
// campo. Sem mudanças, não toca o banco.
func persistirMudancas(
	bemRepo repository.BemRepository,
	auditoriaRepo repository.AuditoriaRepository,
	bemID, atorID string,
	campos map[string]any,
	mudancas []auditoria.Mudanca,
	quando time.Time,
) error {
	if len(campos) == 0 {
		return nil
	}
	if err := bemRepo.AtualizarCampos(bemID, campos, quando); err != nil {
		return err
	}
	return gravarAuditoria(auditoriaRepo, bemID, atorID, quando, mudancas)
}

func gravarAuditoria(auditoriaRepo repository.AuditoriaRepository, bemID, atorID string, quando time.Time, mudancas []auditoria.Mudanca) error {
	if len(mudancas) == 0 {
		return nil
	}
	registros := make([]*entity.RegistroAuditoria, 0, len(mudancas))
	for _, m := range mudancas {
		registros = append(registros, &entity.RegistroAuditoria{
			ID:          uuid.New().String(),
			BemID:       bemID,
			Campo:       m.Campo,
			ValorAntigo: m.ValorAntigo,
			ValorNovo:   m.ValorNovo,
			UsuarioID:   atorID,
			CriadoEm:    quando,
		})
	}
	return auditoriaRepo.CreateLote(registros)
}

func toBemResponse(bem *entity.Bem, referencia time.Time) *dto.BemResponse {
	return &dto.BemResponse{
		ID:                bem.ID,
		NumeroPatrimonial: bem.NumeroPatrimonial,
		Descricao:         bem.Descricao,
		SetorID:           bem.SetorID,
		SubcategoriaID:    bem.SubcategoriaID,
		ValorAquisicao:    bem.ValorAquisicao,
		ValorAtual:        dompatrimonio.ValorAtual(bem.ValorAquisicao, bem.DataAquisicao, bem.VidaUtilMeses, referencia),
		DataAquisicao:     bem.DataAquisicao,
		VidaUtilMeses:     bem.VidaUtilMeses,
		EstadoConservacao: bem.EstadoConservacao,
		Situacao:          bem.Situacao,
		Ativo:             bem.Ativo,
		CriadoEm:          bem.CriadoEm,
		AtualizadoEm:      bem.AtualizadoEm,
	}
}
