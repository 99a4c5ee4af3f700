package usecase

import (
	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
)

// DashboardUseCase agregados somente leitura para o painel.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Resumo monta os agregados do painel em uma única resposta.
func (uc *DashboardUseCase) Resumo() (*dto.DashboardResponse, error) {
	porSituacao, err := uc.repo.ContagemPorSituacao()
	if err != nil {
		return nil, err
	}
	porSetor, err := uc.repo.ResumoPorSetor()
	if err != nil {
		return nil, err
	}
	valorTotal, err := uc.repo.ValorTotalAtivo()
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{ValorTotal: valorTotal}
	for _, c := range porSituacao {
		out.PorSituacao = append(out.PorSituacao, dto.ContagemSituacaoDTO{Situacao: c.Situacao, Total: c.Total})
	}
	for _, s := range porSetor {
		out.PorSetor = append(out.PorSetor, dto.ResumoSetorDTO{
			SetorID:        s.SetorID,
			SetorNome:      s.SetorNome,
			TotalBens:      s.TotalBens,
			ValorAquisicao: s.ValorAquisicao,
		})
	}
	return out, nil
}
