package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
)

func TestSaleItemsJSONB_ConservaPrecioExacto(t *testing.T) {
	items := []entity.SaleItem{{
		ProductID: 3, ProductName: "Taza", Quantity: 2,
		UnitPrice: decimal.RequireFromString("0.1"), Subtotal: decimal.RequireFromString("0.2"),
	}}
	raw, err := encodeItems(items)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"producto_id":3,"producto_nombre":"Taza","cantidad":2,"precio_unitario":"0.1","subtotal":"0.2"}]`, string(raw))

	back, err := decodeItems(raw)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.True(t, back[0].Subtotal.Equal(decimal.RequireFromString("0.2")))
}

func TestDecodeItems_VacioDaListaVacia(t *testing.T) {
	got, err := decodeItems(nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTextArray_NilComoVacio(t *testing.T) {
	assert.Equal(t, []string{}, textArray(nil))
	assert.Equal(t, []string{"a"}, textArray([]string{"a"}))
}
