package inventario_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/application/inventario"
	"github.com/jhoicas/Patrimonio-api/internal/domain"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/Patrimonio-api/internal/domain/patrimonio"
	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
)

const atorTeste = "user-1"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventarioRepo struct {
	inventarios map[string]*entity.Inventario
	itens       map[string]*entity.ItemInventario
	lotes       []int // tamanho de cada lote recebido por CreateItensLote
}

func newFakeInventarioRepo() *fakeInventarioRepo {
	return &fakeInventarioRepo{
		inventarios: map[string]*entity.Inventario{},
		itens:       map[string]*entity.ItemInventario{},
	}
}

func (f *fakeInventarioRepo) Create(inv *entity.Inventario) error {
	copia := *inv
	f.inventarios[inv.ID] = &copia
	return nil
}

func (f *fakeInventarioRepo) GetByID(id string) (*entity.Inventario, error) {
	inv, ok := f.inventarios[id]
	if !ok {
		return nil, nil
	}
	copia := *inv
	return &copia, nil
}

// Fechar reproduz o predicado do adaptador real: só fecha se ainda ABERTO.
func (f *fakeInventarioRepo) Fechar(id string, dataFim time.Time) error {
	inv, ok := f.inventarios[id]
	if !ok || inv.Status != entity.InventarioAberto {
		return domain.ErrInventarioFechado
	}
	inv.Status = entity.InventarioFechado
	inv.DataFim = &dataFim
	return nil
}

func (f *fakeInventarioRepo) List(limit, offset int) ([]*entity.Inventario, error) {
	var out []*entity.Inventario
	for _, inv := range f.inventarios {
		copia := *inv
		out = append(out, &copia)
	}
	return out, nil
}

func (f *fakeInventarioRepo) CreateItem(item *entity.ItemInventario) error {
	for _, existente := range f.itens {
		if existente.InventarioID == item.InventarioID && existente.BemID == item.BemID {
			return domain.ErrDuplicado
		}
	}
	copia := *item
	f.itens[item.ID] = &copia
	return nil
}

func (f *fakeInventarioRepo) CreateItensLote(itens []*entity.ItemInventario) error {
	f.lotes = append(f.lotes, len(itens))
	for _, item := range itens {
		if err := f.CreateItem(item); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeInventarioRepo) GetItemByID(id string) (*entity.ItemInventario, error) {
	item, ok := f.itens[id]
	if !ok {
		return nil, nil
	}
	copia := *item
	return &copia, nil
}

func (f *fakeInventarioRepo) GetItemByPar(inventarioID, bemID string) (*entity.ItemInventario, error) {
	for _, item := range f.itens {
		if item.InventarioID == inventarioID && item.BemID == bemID {
			copia := *item
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeInventarioRepo) UpdateItem(item *entity.ItemInventario) error {
	if _, ok := f.itens[item.ID]; !ok {
		return domain.ErrNaoEncontrado
	}
	copia := *item
	f.itens[item.ID] = &copia
	return nil
}

func (f *fakeInventarioRepo) ListItens(inventarioID string) ([]*entity.ItemInventario, error) {
	var out []*entity.ItemInventario
	for _, item := range f.itens {
		if item.InventarioID == inventarioID {
			copia := *item
			out = append(out, &copia)
		}
	}
	return out, nil
}

type fakeBemRepo struct {
	bens map[string]*entity.Bem
}

func newFakeBemRepo(ids ...string) *fakeBemRepo {
	f := &fakeBemRepo{bens: map[string]*entity.Bem{}}
	for _, id := range ids {
		f.bens[id] = &entity.Bem{
			ID:                id,
			NumeroPatrimonial: "PAT-" + id,
			Descricao:         "Bem " + id,
			SetorID:           "S1",
			Situacao:          entity.SituacaoEmUso,
			Ativo:             true,
		}
	}
	return f
}

func (f *fakeBemRepo) Create(bem *entity.Bem) error { return nil }

func (f *fakeBemRepo) GetByID(id string) (*entity.Bem, error) {
	b, ok := f.bens[id]
	if !ok {
		return nil, nil
	}
	return b, nil
}

func (f *fakeBemRepo) GetByNumeroPatrimonial(numero string) (*entity.Bem, error) { return nil, nil }

func (f *fakeBemRepo) List(filtro repository.FiltroBens) ([]*entity.Bem, int, error) {
	return nil, 0, nil
}

func (f *fakeBemRepo) ListAtivos() ([]*entity.Bem, error) {
	var out []*entity.Bem
	for _, b := range f.bens {
		if b.Ativo {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBemRepo) AtualizarCampos(id string, campos map[string]any, quando time.Time) error {
	return nil
}

func (f *fakeBemRepo) SoftDelete(id string, quando time.Time) error { return nil }

type fakeTxRunner struct {
	inventarioRepo *fakeInventarioRepo
	bemRepo        *fakeBemRepo
}

func (f *fakeTxRunner) RunInventario(ctx context.Context, fn func(
	repository.InventarioRepository,
	repository.BemRepository,
) error) error {
	return fn(f.inventarioRepo, f.bemRepo)
}

// fakePDF devolve um marcador fixo; o conteúdo real é coberto nos testes do
// gerador maroto.
type fakePDF struct{}

func (fakePDF) GerarRelatorioInventario(inv *entity.Inventario, linhas []inventario.LinhaRelatorio) ([]byte, error) {
	return []byte("%PDF"), nil
}

func novoUC(bemIDs ...string) (*inventario.InventarioUseCase, *fakeInventarioRepo, *fakeBemRepo) {
	invRepo := newFakeInventarioRepo()
	bemRepo := newFakeBemRepo(bemIDs...)
	uc := inventario.NewInventarioUseCase(&fakeTxRunner{inventarioRepo: invRepo, bemRepo: bemRepo}, invRepo, bemRepo, fakePDF{})
	return uc, invRepo, bemRepo
}

func abrir(t *testing.T, uc *inventario.InventarioUseCase, tipo string) *dto.InventarioResponse {
	t.Helper()
	out, err := uc.Abrir(context.Background(), atorTeste, dto.AbrirInventarioRequest{
		Descricao: "Inventário anual",
		Tipo:      tipo,
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes
// ──────────────────────────────────────────────────────────────────────────────

func TestAbrirGeral_InscreveBensAtivos(t *testing.T) {
	uc, invRepo, bemRepo := novoUC("B1", "B2", "B3")
	bemRepo.bens["B3"].Ativo = false // excluído logicamente: fica fora

	out := abrir(t, uc, entity.InventarioGeral)

	assert.Equal(t, entity.InventarioAberto, out.Status)
	assert.Equal(t, 2, out.TotalItens)

	itens, err := invRepo.ListItens(out.ID)
	require.NoError(t, err)
	require.Len(t, itens, 2)
	for _, item := range itens {
		assert.False(t, item.Conferido, "itens nascem pendentes")
	}
	require.Len(t, invRepo.lotes, 1, "acervo pequeno cabe em um lote")
}

func TestAbrirManual_ComecaVazio(t *testing.T) {
	uc, invRepo, _ := novoUC("B1", "B2")

	out := abrir(t, uc, entity.InventarioManual)

	assert.Zero(t, out.TotalItens)
	itens, _ := invRepo.ListItens(out.ID)
	assert.Empty(t, itens)
}

func TestAbrir_EntradaInvalida(t *testing.T) {
	uc, _, _ := novoUC()

	_, err := uc.Abrir(context.Background(), atorTeste, dto.AbrirInventarioRequest{Tipo: entity.InventarioGeral})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "descrição obrigatória")

	_, err = uc.Abrir(context.Background(), atorTeste, dto.AbrirInventarioRequest{Descricao: "x", Tipo: "ROTATIVO"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "tipo desconhecido")
}

// FECHADO é terminal: a segunda tentativa falha e nada muda.
func TestFechar_Terminal(t *testing.T) {
	uc, _, _ := novoUC("B1")
	aberto := abrir(t, uc, entity.InventarioGeral)

	fechado, err := uc.Fechar(aberto.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InventarioFechado, fechado.Status)
	require.NotNil(t, fechado.DataFim)

	_, err = uc.Fechar(aberto.ID)
	assert.ErrorIs(t, err, domain.ErrInventarioFechado)
}

func TestAdicionarItem(t *testing.T) {
	uc, _, _ := novoUC("B1")
	inv := abrir(t, uc, entity.InventarioManual)

	item, err := uc.AdicionarItem(dto.AdicionarItemRequest{InventarioID: inv.ID, BemID: "B1"})
	require.NoError(t, err)
	assert.Equal(t, patrimonio.ItemPendente, item.Classificacao)

	// mesmo par inventário/bem não entra duas vezes
	_, err = uc.AdicionarItem(dto.AdicionarItemRequest{InventarioID: inv.ID, BemID: "B1"})
	assert.ErrorIs(t, err, domain.ErrDuplicado)

	_, err = uc.AdicionarItem(dto.AdicionarItemRequest{InventarioID: inv.ID, BemID: "B-inexistente"})
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestAdicionarItem_InventarioFechado(t *testing.T) {
	uc, _, _ := novoUC("B1")
	inv := abrir(t, uc, entity.InventarioManual)
	_, err := uc.Fechar(inv.ID)
	require.NoError(t, err)

	_, err = uc.AdicionarItem(dto.AdicionarItemRequest{InventarioID: inv.ID, BemID: "B1"})
	assert.ErrorIs(t, err, domain.ErrInventarioFechado)
}

func TestConferirItem_CarimbaAtorEData(t *testing.T) {
	uc, _, _ := novoUC("B1")
	inv := abrir(t, uc, entity.InventarioGeral)
	itens, err := uc.ListarItens(inv.ID)
	require.NoError(t, err)
	itemID := itens.Itens[0].ID

	conferido := true
	out, err := uc.ConferirItem(itemID, atorTeste, dto.ConferirItemRequest{Conferido: &conferido})
	require.NoError(t, err)
	require.NotNil(t, out.ConferidoPor)
	assert.Equal(t, atorTeste, *out.ConferidoPor)
	require.NotNil(t, out.DataConferencia, "data omitida assume o momento da conferência")
	assert.Equal(t, patrimonio.ItemEncontrado, out.Classificacao)

	// segunda conferência não reinicia a data carimbada
	primeira := *out.DataConferencia
	out, err = uc.ConferirItem(itemID, "user-2", dto.ConferirItemRequest{Conferido: &conferido})
	require.NoError(t, err)
	assert.True(t, primeira.Equal(*out.DataConferencia))
	assert.Equal(t, "user-2", *out.ConferidoPor)
}

func TestConferirItem_ComDivergencia(t *testing.T) {
	uc, _, _ := novoUC("B1")
	inv := abrir(t, uc, entity.InventarioGeral)
	itens, _ := uc.ListarItens(inv.ID)
	itemID := itens.Itens[0].ID

	conferido := true
	divergencia := "Não encontrado no setor"
	out, err := uc.ConferirItem(itemID, atorTeste, dto.ConferirItemRequest{
		Conferido:   &conferido,
		Divergencia: &divergencia,
	})
	require.NoError(t, err)
	assert.Equal(t, patrimonio.ItemNaoEncontrado, out.Classificacao)
}

func TestConferirItem_InventarioFechado(t *testing.T) {
	uc, _, _ := novoUC("B1")
	inv := abrir(t, uc, entity.InventarioGeral)
	itens, _ := uc.ListarItens(inv.ID)
	itemID := itens.Itens[0].ID
	_, err := uc.Fechar(inv.ID)
	require.NoError(t, err)

	conferido := true
	_, err = uc.ConferirItem(itemID, atorTeste, dto.ConferirItemRequest{Conferido: &conferido})
	assert.ErrorIs(t, err, domain.ErrInventarioFechado)
}

func TestListarItens_Progresso(t *testing.T) {
	uc, _, _ := novoUC("B1", "B2", "B3", "B4")
	inv := abrir(t, uc, entity.InventarioGeral)
	itens, err := uc.ListarItens(inv.ID)
	require.NoError(t, err)
	require.Equal(t, 4, itens.Total)
	assert.Zero(t, itens.Progresso)

	conferido := true
	_, err = uc.ConferirItem(itens.Itens[0].ID, atorTeste, dto.ConferirItemRequest{Conferido: &conferido})
	require.NoError(t, err)

	itens, err = uc.ListarItens(inv.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, itens.Progresso, 1e-9)
}

func TestRelatorio(t *testing.T) {
	uc, _, _ := novoUC("B1")
	inv := abrir(t, uc, entity.InventarioGeral)

	pdf, err := uc.Relatorio(inv.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	_, err = uc.Relatorio("inv-inexistente")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}
