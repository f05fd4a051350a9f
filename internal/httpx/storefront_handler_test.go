package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ayeshakhanum-26/Market-Place-App/internal/market"
	"github.com/ayeshakhanum-26/Market-Place-App/internal/storefront"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	products []market.Product
	orders   []market.Order
	orderID  int64
}

func (s *stubAPI) ListProducts(ctx context.Context) ([]market.Product, error) {
	return s.products, nil
}
func (s *stubAPI) ListOrders(ctx context.Context) ([]market.Order, error) { return s.orders, nil }
func (s *stubAPI) CreateProduct(ctx context.Context, req market.CreateProductRequest) (int64, error) {
	return 1, nil
}
func (s *stubAPI) CreateOrder(ctx context.Context, req market.CreateOrderRequest) (int64, error) {
	return s.orderID, nil
}

func newTestServer(t *testing.T, api storefront.CatalogAPI) (*httptest.Server, *storefront.Store) {
	t.Helper()
	store := storefront.New(api, zerolog.Nop())
	r := NewRouter()
	(&StorefrontHandler{Store: store}).Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, store
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestStateAndRefresh(t *testing.T) {
	api := &stubAPI{products: []market.Product{{ID: 7, Title: "Phone", Price: decimal.NewFromInt(9999)}}}
	srv, _ := newTestServer(t, api)

	resp := post(t, srv.URL+"/refresh", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(srv.URL + "/state")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	require.Equal(t, "application/json", resp2.Header.Get("Content-Type"))
}

func TestDraftFieldRoutes(t *testing.T) {
	srv, store := newTestServer(t, &stubAPI{})

	resp := post(t, srv.URL+"/drafts/product", `{"field":"title","value":"Phone"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Phone", store.Snapshot().ProductDraft.Title)

	resp = post(t, srv.URL+"/drafts/product", `{"field":"color","value":"red"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(t, srv.URL+"/drafts/buyer", `not json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckoutRoutes(t *testing.T) {
	api := &stubAPI{
		products: []market.Product{{ID: 7, Title: "Phone", Price: decimal.NewFromInt(9999)}},
		orderID:  42,
	}
	srv, store := newTestServer(t, api)
	post(t, srv.URL+"/refresh", "")

	resp := post(t, srv.URL+"/checkout/99", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = post(t, srv.URL+"/checkout/7", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, store.Snapshot().Checkout)

	post(t, srv.URL+"/drafts/buyer", `{"field":"buyer_name","value":"Asha"}`)
	post(t, srv.URL+"/drafts/buyer", `{"field":"buyer_phone","value":"123"}`)
	post(t, srv.URL+"/drafts/buyer", `{"field":"buyer_address","value":"42 Lane"}`)

	resp = post(t, srv.URL+"/checkout/confirm", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st := store.Snapshot()
	require.Nil(t, st.Checkout)
	require.Contains(t, st.Message, "42")

	resp = post(t, srv.URL+"/checkout/cancel", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
