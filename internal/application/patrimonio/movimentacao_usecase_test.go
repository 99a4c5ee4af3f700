package patrimonio_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/application/patrimonio"
	"github.com/jhoicas/Patrimonio-api/internal/domain"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
)

func novoMovimentacaoUC(a *ambiente) *patrimonio.MovimentacaoUseCase {
	return patrimonio.NewMovimentacaoUseCase(a.txRunner, a.bemRepo, a.setorRepo, a.movimentacaoRepo)
}

func TestMovimentacaoTransferencia(t *testing.T) {
	a := novoAmbiente()
	a.semearBem("B1", "PAT-0001")
	uc := novoMovimentacaoUC(a)

	destino := "S2"
	out, err := uc.Registrar(context.Background(), atorTeste, dto.RegistrarMovimentacaoRequest{
		BemID:          "B1",
		Tipo:           entity.MovimentacaoTransferencia,
		SetorDestinoID: &destino,
	})
	require.NoError(t, err)

	require.NotNil(t, out.SetorOrigemID)
	assert.Equal(t, "S1", *out.SetorOrigemID)
	assert.Equal(t, "S2", *out.SetorDestinoID)

	bem, err := a.bemRepo.GetByID("B1")
	require.NoError(t, err)
	assert.Equal(t, "S2", bem.SetorID)
	assert.Equal(t, entity.SituacaoEmUso, bem.Situacao, "transferência não muda a situação")

	// A troca de setor passa pelo mesmo ledger das edições diretas.
	registros := a.auditoriaRepo.porBem("B1")
	require.Len(t, registros, 1)
	assert.Equal(t, patrimonio.CampoSetorID, registros[0].Campo)
	assert.Equal(t, "S1", registros[0].ValorAntigo)
	assert.Equal(t, "S2", registros[0].ValorNovo)
}

func TestMovimentacaoTransferencia_SemDestino(t *testing.T) {
	a := novoAmbiente()
	a.semearBem("B1", "PAT-0001")
	uc := novoMovimentacaoUC(a)

	_, err := uc.Registrar(context.Background(), atorTeste, dto.RegistrarMovimentacaoRequest{
		BemID: "B1",
		Tipo:  entity.MovimentacaoTransferencia,
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Empty(t, a.movimentacaoRepo.movs, "nada é gravado quando a validação falha")
}

func TestMovimentacaoTransferencia_DestinoInexistente(t *testing.T) {
	a := novoAmbiente()
	a.semearBem("B1", "PAT-0001")
	uc := novoMovimentacaoUC(a)

	destino := "S-inexistente"
	_, err := uc.Registrar(context.Background(), atorTeste, dto.RegistrarMovimentacaoRequest{
		BemID:          "B1",
		Tipo:           entity.MovimentacaoTransferencia,
		SetorDestinoID: &destino,
	})
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestMovimentacaoEmprestimoEDevolucao(t *testing.T) {
	a := novoAmbiente()
	a.semearBem("B1", "PAT-0001")
	uc := novoMovimentacaoUC(a)

	_, err := uc.Registrar(context.Background(), atorTeste, dto.RegistrarMovimentacaoRequest{
		BemID: "B1",
		Tipo:  entity.MovimentacaoEmprestimo,
	})
	require.NoError(t, err)
	bem, _ := a.bemRepo.GetByID("B1")
	assert.Equal(t, entity.SituacaoOcioso, bem.Situacao)

	_, err = uc.Registrar(context.Background(), atorTeste, dto.RegistrarMovimentacaoRequest{
		BemID: "B1",
		Tipo:  entity.MovimentacaoDevolucao,
	})
	require.NoError(t, err)
	bem, _ = a.bemRepo.GetByID("B1")
	assert.Equal(t, entity.SituacaoEmUso, bem.Situacao)

	registros := a.auditoriaRepo.porBem("B1")
	require.Len(t, registros, 2, "cada transição gera uma linha de situacao")
	assert.Equal(t, patrimonio.CampoSituacao, registros[0].Campo)
	assert.Equal(t, entity.SituacaoOcioso, registros[0].ValorNovo)
	assert.Equal(t, entity.SituacaoEmUso, registros[1].ValorNovo)
}

func TestMovimentacao_BemBaixado(t *testing.T) {
	a := novoAmbiente()
	bem := a.semearBem("B1", "PAT-0001")
	bem.Situacao = entity.SituacaoBaixado
	uc := novoMovimentacaoUC(a)

	destino := "S2"
	_, err := uc.Registrar(context.Background(), atorTeste, dto.RegistrarMovimentacaoRequest{
		BemID:          "B1",
		Tipo:           entity.MovimentacaoTransferencia,
		SetorDestinoID: &destino,
	})
	assert.ErrorIs(t, err, domain.ErrTransicaoInvalida)
}

func TestMovimentacao_BemInexistente(t *testing.T) {
	a := novoAmbiente()
	uc := novoMovimentacaoUC(a)

	_, err := uc.Registrar(context.Background(), atorTeste, dto.RegistrarMovimentacaoRequest{
		BemID: "B-inexistente",
		Tipo:  entity.MovimentacaoEmprestimo,
	})
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestMovimentacao_TipoInvalido(t *testing.T) {
	a := novoAmbiente()
	a.semearBem("B1", "PAT-0001")
	uc := novoMovimentacaoUC(a)

	_, err := uc.Registrar(context.Background(), atorTeste, dto.RegistrarMovimentacaoRequest{
		BemID: "B1",
		Tipo:  "DOACAO",
	})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestMovimentacaoListarPorBem(t *testing.T) {
	a := novoAmbiente()
	a.semearBem("B1", "PAT-0001")
	a.semearBem("B2", "PAT-0002")
	uc := novoMovimentacaoUC(a)

	_, err := uc.Registrar(context.Background(), atorTeste, dto.RegistrarMovimentacaoRequest{
		BemID: "B1",
		Tipo:  entity.MovimentacaoEmprestimo,
	})
	require.NoError(t, err)
	_, err = uc.Registrar(context.Background(), atorTeste, dto.RegistrarMovimentacaoRequest{
		BemID: "B2",
		Tipo:  entity.MovimentacaoEmprestimo,
	})
	require.NoError(t, err)

	movs, err := uc.ListarPorBem("B1")
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, "B1", movs[0].BemID)
}
