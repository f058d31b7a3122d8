//go:build unit

package serviceorder_test

import (
	"testing"

	"workshop-quotes/internal/domain/quote"
	"workshop-quotes/internal/domain/serviceorder"
	"workshop-quotes/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromQuote(t *testing.T) {
	t.Run("copies the accepted commercial terms", func(t *testing.T) {
		b := builder.NewQuoteBuilder().WithCosts(quote.Costs{
			LaborCost: quote.MoneyFromFloat(40),
			Discount:  quote.MoneyFromFloat(10),
		})
		q, err := b.BuildInStatus(quote.StatusAccepted)
		require.NoError(t, err)

		id := uuid.New()
		so, err := serviceorder.FromQuote(q, id, b.Now)
		require.NoError(t, err)

		assert.Equal(t, id, so.ID)
		assert.Equal(t, q.ID(), so.QuoteID)
		assert.Equal(t, q.TenantID(), so.TenantID)
		assert.Equal(t, "OS-000001", so.Number)
		assert.Equal(t, serviceorder.StatusOpen, so.Status)
		assert.Equal(t, int64(18000), so.Total.Cents())
		assert.Equal(t, int64(4000), so.LaborCost.Cents())
		assert.Equal(t, int64(1000), so.Discount.Cents())
		require.Len(t, so.Items, 2)
		assert.Equal(t, "Troca de óleo", so.Items[0].Name)
		assert.Equal(t, float64(2), so.Items[1].Quantity)
		assert.Equal(t, int64(2500), so.Items[1].UnitCost.Cents())
		assert.Equal(t, int64(5000), so.Items[1].TotalCost.Cents())
		require.NotNil(t, so.MechanicID)
		assert.Equal(t, b.MechanicID, *so.MechanicID)
	})

	t.Run("refuses quotes that are not accepted", func(t *testing.T) {
		for _, status := range []quote.Status{quote.StatusViewed, quote.StatusConverted, quote.StatusRejected} {
			q, err := builder.NewQuoteBuilder().BuildInStatus(status)
			require.NoError(t, err)

			_, err = serviceorder.FromQuote(q, uuid.New(), q.UpdatedAt())
			assert.ErrorIs(t, err, serviceorder.ErrNotConvertible, status.String())
		}
	})
}
