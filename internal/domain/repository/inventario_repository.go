package repository

import (
	"time"

	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
)

// InventarioRepository porto de persistência para inventários e seus itens.
// CreateItensLote insere um lote de itens em um único statement; a inscrição
// em massa chama em lotes dentro de uma transação.
type InventarioRepository interface {
	Create(inv *entity.Inventario) error
	GetByID(id string) (*entity.Inventario, error)
	Fechar(id string, dataFim time.Time) error
	List(limit, offset int) ([]*entity.Inventario, error)

	CreateItem(item *entity.ItemInventario) error
	CreateItensLote(itens []*entity.ItemInventario) error
	GetItemByID(id string) (*entity.ItemInventario, error)
	GetItemByPar(inventarioID, bemID string) (*entity.ItemInventario, error)
	UpdateItem(item *entity.ItemInventario) error
	ListItens(inventarioID string) ([]*entity.ItemInventario, error)
}
