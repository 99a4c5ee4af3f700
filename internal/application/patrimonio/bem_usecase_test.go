package patrimonio_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/application/patrimonio"
	"github.com/jhoicas/Patrimonio-api/internal/domain"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
)

const atorTeste = "user-1"

func novoBemUC(a *ambiente) *patrimonio.BemUseCase {
	return patrimonio.NewBemUseCase(a.bemRepo, a.auditoriaRepo, a.setorRepo, a.categoriaRepo)
}

func TestBemCriar(t *testing.T) {
	a := novoAmbiente()
	uc := novoBemUC(a)

	out, err := uc.Criar(atorTeste, dto.CriarBemRequest{
		NumeroPatrimonial: "PAT-0001",
		Descricao:         "Notebook Dell",
		SetorID:           "S1",
		ValorAquisicao:    decimal.NewFromInt(4200),
		DataAquisicao:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		VidaUtilMeses:     60,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SituacaoEmUso, out.Situacao, "bem nasce EM_USO")
	assert.True(t, out.Ativo)
	assert.Equal(t, entity.ConservacaoBom, out.EstadoConservacao, "conservação padrão é BOM")
	assert.Empty(t, a.auditoriaRepo.registros, "cadastro não gera linha de auditoria")
}

func TestBemCriar_NumeroDuplicado(t *testing.T) {
	a := novoAmbiente()
	a.semearBem("B1", "PAT-0001")
	uc := novoBemUC(a)

	_, err := uc.Criar(atorTeste, dto.CriarBemRequest{
		NumeroPatrimonial: "PAT-0001",
		Descricao:         "Outro bem",
		SetorID:           "S1",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicado)
}

func TestBemCriar_SetorInexistente(t *testing.T) {
	a := novoAmbiente()
	uc := novoBemUC(a)

	_, err := uc.Criar(atorTeste, dto.CriarBemRequest{
		NumeroPatrimonial: "PAT-0002",
		Descricao:         "Cadeira",
		SetorID:           "S-inexistente",
	})
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

// Só campos efetivamente diferentes são gravados e auditados; o número
// patrimonial enviado no corpo é ignorado.
func TestBemAtualizar_DiffEAuditoria(t *testing.T) {
	a := novoAmbiente()
	bem := a.semearBem("B1", "PAT-0001")
	uc := novoBemUC(a)

	novaDescricao := "Notebook Dell Latitude"
	mesmaConservacao := bem.EstadoConservacao
	outroNumero := "PAT-9999"
	out, err := uc.Atualizar("B1", atorTeste, dto.AtualizarBemRequest{
		NumeroPatrimonial: &outroNumero,
		Descricao:         &novaDescricao,
		EstadoConservacao: &mesmaConservacao,
	})
	require.NoError(t, err)

	assert.Equal(t, "PAT-0001", out.NumeroPatrimonial, "número patrimonial é imutável")
	assert.Equal(t, novaDescricao, out.Descricao)

	registros := a.auditoriaRepo.porBem("B1")
	require.Len(t, registros, 1, "apenas o campo alterado gera linha")
	assert.Equal(t, patrimonio.CampoDescricao, registros[0].Campo)
	assert.Equal(t, "Notebook", registros[0].ValorAntigo)
	assert.Equal(t, novaDescricao, registros[0].ValorNovo)
	assert.Equal(t, atorTeste, registros[0].UsuarioID)
}

func TestBemAtualizar_SemMudancasNaoAudita(t *testing.T) {
	a := novoAmbiente()
	bem := a.semearBem("B1", "PAT-0001")
	uc := novoBemUC(a)

	mesma := bem.Descricao
	_, err := uc.Atualizar("B1", atorTeste, dto.AtualizarBemRequest{Descricao: &mesma})
	require.NoError(t, err)
	assert.Empty(t, a.auditoriaRepo.registros)
}

func TestBemAtualizar_DescricaoVazia(t *testing.T) {
	a := novoAmbiente()
	a.semearBem("B1", "PAT-0001")
	uc := novoBemUC(a)

	vazia := ""
	_, err := uc.Atualizar("B1", atorTeste, dto.AtualizarBemRequest{Descricao: &vazia})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestBemExcluir(t *testing.T) {
	a := novoAmbiente()
	a.semearBem("B1", "PAT-0001")
	uc := novoBemUC(a)

	require.NoError(t, uc.Excluir("B1", atorTeste))

	registros := a.auditoriaRepo.porBem("B1")
	require.Len(t, registros, 1)
	assert.Equal(t, patrimonio.CampoAtivo, registros[0].Campo)
	assert.Equal(t, "true", registros[0].ValorAntigo)
	assert.Equal(t, "false", registros[0].ValorNovo)

	// Bem excluído some das consultas; segunda exclusão é 404.
	_, err := uc.BuscarPorID("B1")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
	assert.ErrorIs(t, uc.Excluir("B1", atorTeste), domain.ErrNaoEncontrado)
}

func TestBemHistorico_OrdemDecrescente(t *testing.T) {
	a := novoAmbiente()
	a.semearBem("B1", "PAT-0001")
	uc := novoBemUC(a)

	d1 := "Primeira edição"
	d2 := "Segunda edição"
	_, err := uc.Atualizar("B1", atorTeste, dto.AtualizarBemRequest{Descricao: &d1})
	require.NoError(t, err)
	_, err = uc.Atualizar("B1", atorTeste, dto.AtualizarBemRequest{Descricao: &d2})
	require.NoError(t, err)

	historico, err := uc.Historico("B1", 10)
	require.NoError(t, err)
	require.Len(t, historico, 2)
	assert.Equal(t, d2, historico[0].ValorNovo, "mais recente primeiro")
	assert.Equal(t, d1, historico[1].ValorNovo)
}

func TestBemBuscarPorID_CalculaValorAtual(t *testing.T) {
	a := novoAmbiente()
	bem := a.semearBem("B1", "PAT-0001")
	bem.DataAquisicao = time.Now().AddDate(0, -30, -1) // metade da vida útil de 60 meses
	uc := novoBemUC(a)

	out, err := uc.BuscarPorID("B1")
	require.NoError(t, err)
	esperado := bem.ValorAquisicao.Div(decimal.NewFromInt(2))
	assert.True(t, out.ValorAtual.Equal(esperado),
		"metade da vida útil deprecia metade do valor: esperado %s, obtido %s", esperado, out.ValorAtual)
}
