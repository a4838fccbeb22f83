package quotation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestock/sge-core/internal/domain/entity"
	"github.com/gestock/sge-core/internal/domain/quotation"
)

func quote(id string, price float64, leadTime int, validity string) entity.Quotation {
	return entity.Quotation{
		ID:           id,
		ProductID:    "prod-1",
		SupplierID:   "sup-" + id,
		Price:        decimal.NewFromFloat(price),
		LeadTimeDays: leadTime,
		Validity:     validity,
	}
}

func TestByPrice_EligeElMenorPrecio(t *testing.T) {
	quotes := []entity.Quotation{
		quote("a", 12.50, 3, entity.QuotationActive),
		quote("b", 9.99, 15, entity.QuotationActive),
		quote("c", 10.00, 1, entity.QuotationActive),
	}
	best := quotation.ByPrice{}.Select(quotes)
	require.NotNil(t, best)
	assert.Equal(t, "b", best.ID)
}

func TestByLeadTime_EligeElMenorLeadTime(t *testing.T) {
	quotes := []entity.Quotation{
		quote("a", 12.50, 3, entity.QuotationActive),
		quote("b", 9.99, 15, entity.QuotationActive),
		quote("c", 10.00, 1, entity.QuotationActive),
	}
	best := quotation.ByLeadTime{}.Select(quotes)
	require.NotNil(t, best)
	assert.Equal(t, "c", best.ID)
}

func TestFull_ElPrecioDominaAlLeadTime(t *testing.T) {
	quotes := []entity.Quotation{
		quote("rapida", 10.00, 1, entity.QuotationActive),
		quote("barata", 8.00, 20, entity.QuotationActive),
	}
	best := quotation.Full{}.Select(quotes)
	require.NotNil(t, best)
	assert.Equal(t, "barata", best.ID, "precio menor gana aunque el lead time sea mayor")
}

func TestFull_EmpateEnPrecioDesempataPorLeadTime(t *testing.T) {
	quotes := []entity.Quotation{
		quote("lenta", 10.00, 12, entity.QuotationActive),
		quote("rapida", 10.00, 4, entity.QuotationActive),
	}
	best := quotation.Full{}.Select(quotes)
	require.NotNil(t, best)
	assert.Equal(t, "rapida", best.ID)
}

func TestFull_EmpateTotalPrefiereVigente(t *testing.T) {
	quotes := []entity.Quotation{
		quote("vencida", 10.00, 5, entity.QuotationExpired),
		quote("vigente", 10.00, 5, entity.QuotationActive),
	}
	best := quotation.Full{}.Select(quotes)
	require.NotNil(t, best)
	assert.Equal(t, "vigente", best.ID)
}

func TestFull_UltimoDesempatePorID(t *testing.T) {
	quotes := []entity.Quotation{
		quote("zz", 10.00, 5, entity.QuotationActive),
		quote("aa", 10.00, 5, entity.QuotationActive),
	}
	best := quotation.Full{}.Select(quotes)
	require.NotNil(t, best)
	assert.Equal(t, "aa", best.ID)
}

func TestFull_NoMutaElSliceOriginal(t *testing.T) {
	quotes := []entity.Quotation{
		quote("b", 20.00, 5, entity.QuotationActive),
		quote("a", 10.00, 5, entity.QuotationActive),
	}
	_ = quotation.Full{}.Select(quotes)
	assert.Equal(t, "b", quotes[0].ID, "la selección no reordena la entrada")
}

func TestSelectores_SinCotizacionesDevuelvenNil(t *testing.T) {
	assert.Nil(t, quotation.ByPrice{}.Select(nil))
	assert.Nil(t, quotation.ByLeadTime{}.Select(nil))
	assert.Nil(t, quotation.Full{}.Select(nil))
	assert.Nil(t, quotation.Full{}.Select([]entity.Quotation{}))
}
