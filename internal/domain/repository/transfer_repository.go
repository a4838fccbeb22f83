package repository

import (
	"context"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// TransferRepository persiste y consulta traslados entre bodegas.
type TransferRepository interface {
	Save(ctx context.Context, t *entity.Transfer) error
	FindByID(ctx context.Context, id string) (*entity.Transfer, error)
	// FindByDestMovement devuelve el traslado cuyo movimiento de
	// destino es el dado, o nil si no existe.
	FindByDestMovement(ctx context.Context, movementID string) (*entity.Transfer, error)
	ListByProduct(ctx context.Context, productID string) ([]entity.Transfer, error)
}
