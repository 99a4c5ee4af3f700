package patrimonio_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Patrimonio-api/internal/application/patrimonio"
	"github.com/jhoicas/Patrimonio-api/internal/domain"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos portos de persistência
// ──────────────────────────────────────────────────────────────────────────────

type fakeBemRepo struct {
	bens map[string]*entity.Bem
}

func newFakeBemRepo() *fakeBemRepo {
	return &fakeBemRepo{bens: map[string]*entity.Bem{}}
}

func (f *fakeBemRepo) Create(bem *entity.Bem) error {
	if _, ok := f.bens[bem.ID]; ok {
		return domain.ErrDuplicado
	}
	copia := *bem
	f.bens[bem.ID] = &copia
	return nil
}

func (f *fakeBemRepo) GetByID(id string) (*entity.Bem, error) {
	b, ok := f.bens[id]
	if !ok || b.ExcluidoEm != nil {
		return nil, nil
	}
	copia := *b
	return &copia, nil
}

func (f *fakeBemRepo) GetByNumeroPatrimonial(numero string) (*entity.Bem, error) {
	for _, b := range f.bens {
		if b.NumeroPatrimonial == numero && b.ExcluidoEm == nil {
			copia := *b
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeBemRepo) List(filtro repository.FiltroBens) ([]*entity.Bem, int, error) {
	var out []*entity.Bem
	for _, b := range f.bens {
		if b.ExcluidoEm != nil {
			continue
		}
		if filtro.SetorID != "" && b.SetorID != filtro.SetorID {
			continue
		}
		if filtro.Situacao != "" && b.Situacao != filtro.Situacao {
			continue
		}
		copia := *b
		out = append(out, &copia)
	}
	return out, len(out), nil
}

func (f *fakeBemRepo) ListAtivos() ([]*entity.Bem, error) {
	var out []*entity.Bem
	for _, b := range f.bens {
		if b.Ativo && b.ExcluidoEm == nil {
			copia := *b
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (f *fakeBemRepo) AtualizarCampos(id string, campos map[string]any, quando time.Time) error {
	b, ok := f.bens[id]
	if !ok {
		return domain.ErrNaoEncontrado
	}
	for campo, v := range campos {
		switch campo {
		case patrimonio.CampoDescricao:
			b.Descricao = v.(string)
		case patrimonio.CampoSetorID:
			b.SetorID = v.(string)
		case patrimonio.CampoSubcategoriaID:
			s := v.(string)
			b.SubcategoriaID = &s
		case patrimonio.CampoValorAquisicao:
			b.ValorAquisicao = v.(decimal.Decimal)
		case patrimonio.CampoDataAquisicao:
			b.DataAquisicao = v.(time.Time)
		case patrimonio.CampoVidaUtilMeses:
			b.VidaUtilMeses = v.(int)
		case patrimonio.CampoEstadoConservacao:
			b.EstadoConservacao = v.(string)
		case patrimonio.CampoSituacao:
			b.Situacao = v.(string)
		default:
			return domain.ErrEntradaInvalida
		}
	}
	b.AtualizadoEm = quando
	return nil
}

func (f *fakeBemRepo) SoftDelete(id string, quando time.Time) error {
	b, ok := f.bens[id]
	if !ok || b.ExcluidoEm != nil {
		return domain.ErrNaoEncontrado
	}
	b.Ativo = false
	b.ExcluidoEm = &quando
	b.AtualizadoEm = quando
	return nil
}

type fakeAuditoriaRepo struct {
	registros []*entity.RegistroAuditoria
}

func (f *fakeAuditoriaRepo) CreateLote(registros []*entity.RegistroAuditoria) error {
	f.registros = append(f.registros, registros...)
	return nil
}

func (f *fakeAuditoriaRepo) ListByBem(bemID string, limit int) ([]*entity.RegistroAuditoria, error) {
	var out []*entity.RegistroAuditoria
	// mais recentes primeiro, como o adaptador real
	for i := len(f.registros) - 1; i >= 0 && len(out) < limit; i-- {
		if f.registros[i].BemID == bemID {
			out = append(out, f.registros[i])
		}
	}
	return out, nil
}

// porBem filtra o ledger inteiro de um bem, na ordem de gravação.
func (f *fakeAuditoriaRepo) porBem(bemID string) []*entity.RegistroAuditoria {
	var out []*entity.RegistroAuditoria
	for _, r := range f.registros {
		if r.BemID == bemID {
			out = append(out, r)
		}
	}
	return out
}

type fakeMovimentacaoRepo struct {
	movs []*entity.Movimentacao
}

func (f *fakeMovimentacaoRepo) Create(mov *entity.Movimentacao) error {
	f.movs = append(f.movs, mov)
	return nil
}

func (f *fakeMovimentacaoRepo) List(limit, offset int) ([]*entity.Movimentacao, error) {
	return f.movs, nil
}

func (f *fakeMovimentacaoRepo) ListByBem(bemID string) ([]*entity.Movimentacao, error) {
	var out []*entity.Movimentacao
	for _, m := range f.movs {
		if m.BemID == bemID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeManutencaoRepo struct {
	manutencoes map[string]*entity.Manutencao
}

func newFakeManutencaoRepo() *fakeManutencaoRepo {
	return &fakeManutencaoRepo{manutencoes: map[string]*entity.Manutencao{}}
}

func (f *fakeManutencaoRepo) Create(m *entity.Manutencao) error {
	copia := *m
	f.manutencoes[m.ID] = &copia
	return nil
}

func (f *fakeManutencaoRepo) GetByID(id string) (*entity.Manutencao, error) {
	m, ok := f.manutencoes[id]
	if !ok {
		return nil, nil
	}
	copia := *m
	return &copia, nil
}

func (f *fakeManutencaoRepo) Update(m *entity.Manutencao) error {
	if _, ok := f.manutencoes[m.ID]; !ok {
		return domain.ErrNaoEncontrado
	}
	copia := *m
	f.manutencoes[m.ID] = &copia
	return nil
}

func (f *fakeManutencaoRepo) ListByBem(bemID string) ([]*entity.Manutencao, error) {
	var out []*entity.Manutencao
	for _, m := range f.manutencoes {
		if m.BemID == bemID {
			copia := *m
			out = append(out, &copia)
		}
	}
	return out, nil
}

// fakeBaixaRepo reproduz a constraint única em bem_id do adaptador real.
type fakeBaixaRepo struct {
	baixas map[string]*entity.Baixa // chave: bem_id
}

func newFakeBaixaRepo() *fakeBaixaRepo {
	return &fakeBaixaRepo{baixas: map[string]*entity.Baixa{}}
}

func (f *fakeBaixaRepo) Create(b *entity.Baixa) error {
	if _, ok := f.baixas[b.BemID]; ok {
		return domain.ErrDuplicado
	}
	copia := *b
	f.baixas[b.BemID] = &copia
	return nil
}

func (f *fakeBaixaRepo) GetByBem(bemID string) (*entity.Baixa, error) {
	b, ok := f.baixas[bemID]
	if !ok {
		return nil, nil
	}
	copia := *b
	return &copia, nil
}

type fakeSetorRepo struct {
	setores map[string]*entity.Setor
}

func newFakeSetorRepo(ids ...string) *fakeSetorRepo {
	f := &fakeSetorRepo{setores: map[string]*entity.Setor{}}
	for _, id := range ids {
		f.setores[id] = &entity.Setor{ID: id, Nome: "Setor " + id, Ativo: true}
	}
	return f
}

func (f *fakeSetorRepo) Create(s *entity.Setor) error {
	f.setores[s.ID] = s
	return nil
}

func (f *fakeSetorRepo) GetByID(id string) (*entity.Setor, error) {
	s, ok := f.setores[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSetorRepo) List(limit, offset int) ([]*entity.Setor, error) {
	var out []*entity.Setor
	for _, s := range f.setores {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSetorRepo) Update(s *entity.Setor) error {
	f.setores[s.ID] = s
	return nil
}

type fakeCategoriaRepo struct {
	subcategorias map[string]*entity.Subcategoria
}

func newFakeCategoriaRepo(subIDs ...string) *fakeCategoriaRepo {
	f := &fakeCategoriaRepo{subcategorias: map[string]*entity.Subcategoria{}}
	for _, id := range subIDs {
		f.subcategorias[id] = &entity.Subcategoria{ID: id, CategoriaID: "CAT1", Nome: "Sub " + id}
	}
	return f
}

func (f *fakeCategoriaRepo) Create(c *entity.Categoria) error                { return nil }
func (f *fakeCategoriaRepo) GetByID(id string) (*entity.Categoria, error)    { return nil, nil }
func (f *fakeCategoriaRepo) List() ([]*entity.Categoria, error)              { return nil, nil }
func (f *fakeCategoriaRepo) CreateSubcategoria(s *entity.Subcategoria) error { return nil }
func (f *fakeCategoriaRepo) ListSubcategorias(string) ([]*entity.Subcategoria, error) {
	return nil, nil
}

func (f *fakeCategoriaRepo) GetSubcategoriaByID(id string) (*entity.Subcategoria, error) {
	s, ok := f.subcategorias[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

type fakeFornecedorRepo struct {
	fornecedores map[string]*entity.Fornecedor
}

func newFakeFornecedorRepo(ids ...string) *fakeFornecedorRepo {
	f := &fakeFornecedorRepo{fornecedores: map[string]*entity.Fornecedor{}}
	for _, id := range ids {
		f.fornecedores[id] = &entity.Fornecedor{ID: id, Nome: "Fornecedor " + id, Ativo: true}
	}
	return f
}

func (f *fakeFornecedorRepo) Create(forn *entity.Fornecedor) error { return nil }
func (f *fakeFornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	forn, ok := f.fornecedores[id]
	if !ok {
		return nil, nil
	}
	return forn, nil
}
func (f *fakeFornecedorRepo) List(limit, offset int) ([]*entity.Fornecedor, error) { return nil, nil }
func (f *fakeFornecedorRepo) Update(forn *entity.Fornecedor) error                 { return nil }

// fakeTxRunner entrega os mesmos fakes ao callback — sem transação real, o que
// basta para exercitar a composição evento + transição + auditoria.
type fakeTxRunner struct {
	bemRepo          *fakeBemRepo
	auditoriaRepo    *fakeAuditoriaRepo
	movimentacaoRepo *fakeMovimentacaoRepo
	manutencaoRepo   *fakeManutencaoRepo
	baixaRepo        *fakeBaixaRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.BemRepository,
	repository.AuditoriaRepository,
	repository.MovimentacaoRepository,
	repository.ManutencaoRepository,
	repository.BaixaRepository,
) error) error {
	return fn(f.bemRepo, f.auditoriaRepo, f.movimentacaoRepo, f.manutencaoRepo, f.baixaRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Montagem comum
// ──────────────────────────────────────────────────────────────────────────────

type ambiente struct {
	bemRepo          *fakeBemRepo
	auditoriaRepo    *fakeAuditoriaRepo
	movimentacaoRepo *fakeMovimentacaoRepo
	manutencaoRepo   *fakeManutencaoRepo
	baixaRepo        *fakeBaixaRepo
	setorRepo        *fakeSetorRepo
	categoriaRepo    *fakeCategoriaRepo
	fornecedorRepo   *fakeFornecedorRepo
	txRunner         *fakeTxRunner
}

func novoAmbiente() *ambiente {
	a := &ambiente{
		bemRepo:          newFakeBemRepo(),
		auditoriaRepo:    &fakeAuditoriaRepo{},
		movimentacaoRepo: &fakeMovimentacaoRepo{},
		manutencaoRepo:   newFakeManutencaoRepo(),
		baixaRepo:        newFakeBaixaRepo(),
		setorRepo:        newFakeSetorRepo("S1", "S2"),
		categoriaRepo:    newFakeCategoriaRepo("SC1"),
		fornecedorRepo:   newFakeFornecedorRepo("F1"),
	}
	a.txRunner = &fakeTxRunner{
		bemRepo:          a.bemRepo,
		auditoriaRepo:    a.auditoriaRepo,
		movimentacaoRepo: a.movimentacaoRepo,
		manutencaoRepo:   a.manutencaoRepo,
		baixaRepo:        a.baixaRepo,
	}
	return a
}

// semearBem insere um bem EM_USO no setor S1 direto no fake.
func (a *ambiente) semearBem(id, numero string) *entity.Bem {
	bem := &entity.Bem{
		ID:                id,
		NumeroPatrimonial: numero,
		Descricao:         "Notebook",
		SetorID:           "S1",
		ValorAquisicao:    decimal.NewFromInt(3500),
		DataAquisicao:     time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		VidaUtilMeses:     60,
		EstadoConservacao: entity.ConservacaoBom,
		Situacao:          entity.SituacaoEmUso,
		Ativo:             true,
		CriadoEm:          time.Now(),
		AtualizadoEm:      time.Now(),
	}
	a.bemRepo.bens[id] = bem
	return bem
}
