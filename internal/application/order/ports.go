package order

import (
	"context"

	"github.com/gestock/sge-core/internal/domain/repository"
)

// TxRunner ejecuta el callback con un repositorio de pedidos atado a
// una transacción: el pedido y sus líneas se escriben atómicamente.
type TxRunner interface {
	Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}
