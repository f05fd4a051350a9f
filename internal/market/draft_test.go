package market

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestProductDraftSetIsCopyOnWrite(t *testing.T) {
	var d ProductDraft
	d2, err := d.Set("title", "Phone")
	require.NoError(t, err)
	require.Equal(t, "Phone", d2.Title)
	require.Equal(t, "", d.Title, "original draft must be untouched")
}

func TestProductDraftSetIdempotent(t *testing.T) {
	var d ProductDraft
	once, err := d.Set("category", "Mobiles")
	require.NoError(t, err)
	twice, err := once.Set("category", "Mobiles")
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestProductDraftSetUnknownField(t *testing.T) {
	var d ProductDraft
	_, err := d.Set("color", "red")
	require.Error(t, err)
}

func TestProductDraftCoerce(t *testing.T) {
	d := ProductDraft{
		Title:       "Phone",
		Description: "x",
		Price:       "9999",
		Category:    "Mobiles",
		SellerID:    "3",
	}
	req, err := d.Coerce()
	require.NoError(t, err)
	require.True(t, req.Price.Equal(decimal.NewFromInt(9999)))
	require.Equal(t, int64(3), req.SellerID)
	require.Equal(t, "Phone", req.Title)
}

func TestProductDraftCoerceRejectsNonNumeric(t *testing.T) {
	d := ProductDraft{Title: "Phone", Price: "cheap", SellerID: "3"}
	_, err := d.Coerce()
	require.ErrorContains(t, err, "not a number")

	d = ProductDraft{Title: "Phone", Price: "10", SellerID: "seller"}
	_, err = d.Coerce()
	require.ErrorContains(t, err, "not a number")
}

func TestProductDraftCoerceRejectsNegativePrice(t *testing.T) {
	d := ProductDraft{Price: "-1", SellerID: "3"}
	_, err := d.Coerce()
	require.ErrorContains(t, err, "negative")
}

func TestBuyerDraftSet(t *testing.T) {
	var d BuyerDraft
	d, err := d.Set("buyer_name", "Asha")
	require.NoError(t, err)
	d, err = d.Set("buyer_phone", "123")
	require.NoError(t, err)
	d, err = d.Set("buyer_address", "42 Lane")
	require.NoError(t, err)
	require.Equal(t, BuyerDraft{Name: "Asha", Phone: "123", Address: "42 Lane"}, d)

	_, err = d.Set("buyer_email", "x")
	require.Error(t, err)
}

func TestBuyerDraftComplete(t *testing.T) {
	require.False(t, BuyerDraft{}.Complete())
	require.False(t, BuyerDraft{Name: "Asha", Phone: "   ", Address: "42 Lane"}.Complete())
	require.True(t, BuyerDraft{Name: "Asha", Phone: "123", Address: "42 Lane"}.Complete())
}
