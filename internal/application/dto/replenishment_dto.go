package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestock/sge-core/internal/application/replenishment"
	"github.com/gestock/sge-core/internal/domain/entity"
)

// RegisterPointRequest entrada para dar de alta un punto de reposición.
type RegisterPointRequest struct {
	WarehouseID string `json:"warehouse_id"`
	ProductID   string `json:"product_id"`
	SafetyStock int64  `json:"safety_stock"`
}

// UpdateSafetyStockRequest entrada para actualizar el stock de seguridad.
type UpdateSafetyStockRequest struct {
	SafetyStock int64 `json:"safety_stock"`
}

// ReplenishmentPointResponse salida de un punto de reposición.
type ReplenishmentPointResponse struct {
	ID          string `json:"id"`
	WarehouseID string `json:"warehouse_id"`
	ProductID   string `json:"product_id"`
	SafetyStock int64  `json:"safety_stock"`
}

// NewReplenishmentPointResponse mapea la entidad a su respuesta.
func NewReplenishmentPointResponse(p entity.ReplenishmentPoint) ReplenishmentPointResponse {
	return ReplenishmentPointResponse{
		ID:          p.ID,
		WarehouseID: p.WarehouseID,
		ProductID:   p.ProductID,
		SafetyStock: p.SafetyStock,
	}
}

// AlertResponse salida de una alerta de stock bajo.
type AlertResponse struct {
	ID              string          `json:"id"`
	Level           string          `json:"level"`
	ProductID       string          `json:"product_id"`
	WarehouseID     string          `json:"warehouse_id"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	ROP             int64           `json:"rop"`
	PercentBelowROP decimal.Decimal `json:"percent_below_rop"`
	RaisedAt        time.Time       `json:"raised_at"`
}

// NewAlertResponse mapea la entidad a su respuesta.
func NewAlertResponse(a entity.Alert) AlertResponse {
	return AlertResponse{
		ID:              a.ID,
		Level:           a.Level,
		ProductID:       a.ProductID,
		WarehouseID:     a.WarehouseID,
		CurrentQuantity: a.CurrentQuantity,
		ROP:             a.ROP,
		PercentBelowROP: a.PercentBelowROP,
		RaisedAt:        a.RaisedAt,
	}
}

// AssessmentResponse salida de la evaluación de un punto de reposición.
type AssessmentResponse struct {
	ROP             int64           `json:"rop"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	Status          string          `json:"status"`
	PercentBelowROP decimal.Decimal `json:"percent_below_rop"`
	Alert           *AlertResponse  `json:"alert,omitempty"`
}

// NewAssessmentResponse mapea una evaluación a su respuesta.
func NewAssessmentResponse(a replenishment.Assessment) AssessmentResponse {
	out := AssessmentResponse{
		ROP:             a.ROP,
		CurrentBalance:  a.CurrentBalance,
		Status:          a.Status,
		PercentBelowROP: a.PercentBelowROP,
	}
	if a.Alert != nil {
		alert := NewAlertResponse(*a.Alert)
		out.Alert = &alert
	}
	return out
}
