package repository

import (
	"context"
	"time"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// MovementRepository persiste y consulta movimientos de inventario.
type MovementRepository interface {
	Save(ctx context.Context, m *entity.Movement) error
	FindByID(ctx context.Context, id string) (*entity.Movement, error)
	// FindByDateRange devuelve los movimientos del rango [from, to],
	// ordenados por timestamp e id ascendentes. Ese orden hace
	// determinista la selección de "primer candidato" del motor de
	// inferencia de traslados.
	FindByDateRange(ctx context.Context, from, to time.Time) ([]entity.Movement, error)
	Delete(ctx context.Context, id string) error
}
