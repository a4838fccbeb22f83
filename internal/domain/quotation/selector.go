package quotation

import (
	"sort"

	"github.com/gestock/sge-core/internal/domain/entity"
)

// Selector elige la cotización más ventajosa según una estrategia.
// Devuelve nil cuando no hay cotizaciones; nunca es un error.
type Selector interface {
	Select(quotations []entity.Quotation) *entity.Quotation
}

// ByPrice selecciona la cotización de menor precio.
type ByPrice struct{}

func (ByPrice) Select(quotations []entity.Quotation) *entity.Quotation {
	if len(quotations) == 0 {
		return nil
	}
	best := quotations[0]
	for _, q := range quotations[1:] {
		if q.Price.LessThan(best.Price) {
			best = q
		}
	}
	return &best
}

// ByLeadTime selecciona la cotización de menor lead time.
type ByLeadTime struct{}

func (ByLeadTime) Select(quotations []entity.Quotation) *entity.Quotation {
	if len(quotations) == 0 {
		return nil
	}
	best := quotations[0]
	for _, q := range quotations[1:] {
		if q.LeadTimeDays < best.LeadTimeDays {
			best = q
		}
	}
	return &best
}

// Full es la estrategia por defecto: ordena por precio ascendente,
// luego lead time ascendente, luego validez (ACTIVE antes que EXPIRED)
// y finalmente id ascendente como desempate, y devuelve la primera.
type Full struct{}

func (Full) Select(quotations []entity.Quotation) *entity.Quotation {
	if len(quotations) == 0 {
		return nil
	}
	sorted := make([]entity.Quotation, len(quotations))
	copy(sorted, quotations)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Price.Equal(b.Price) {
			return a.Price.LessThan(b.Price)
		}
		if a.LeadTimeDays != b.LeadTimeDays {
			return a.LeadTimeDays < b.LeadTimeDays
		}
		if a.Validity != b.Validity {
			return a.Validity == entity.QuotationActive
		}
		return a.ID < b.ID
	})
	return &sorted[0]
}
