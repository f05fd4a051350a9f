package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ayeshakhanum-26/Market-Place-App/internal/catalog"
	"github.com/ayeshakhanum-26/Market-Place-App/internal/market"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// User-visible outcome messages. Validation and fallback strings are fixed;
// server rejections are surfaced verbatim when the body carried a message.
const (
	MsgBuyerIncomplete = "Please fill buyer name, phone and address."
	MsgProductAdded    = "Product added successfully!"
	MsgProductServer   = "Server error while adding product"
	MsgProductFailed   = "Failed to add product."
	MsgOrderFailed     = "Failed to place order."
)

var ErrUnknownProduct = errors.New("product not found")

// CatalogAPI is the slice of the remote service the store drives.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]market.Product, error)
	ListOrders(ctx context.Context) ([]market.Order, error)
	CreateProduct(ctx context.Context, req market.CreateProductRequest) (int64, error)
	CreateOrder(ctx context.Context, req market.CreateOrderRequest) (int64, error)
}

// Store owns all client-side state: the product and order read-through
// caches, the two form drafts, the checkout session and the last message.
// Every field is replaced wholesale under the mutex, never mutated in place,
// and no network call is made while the lock is held.
type Store struct {
	api CatalogAPI
	log zerolog.Logger

	mu           sync.Mutex
	products     []market.Product
	orders       []market.Order
	productDraft market.ProductDraft
	buyerDraft   market.BuyerDraft
	checkout     *market.Product // nil means no active session
	message      string

	// in-flight guards: a second submit while one is outstanding is dropped
	productBusy bool
	orderBusy   bool
}

func New(api CatalogAPI, log zerolog.Logger) *Store {
	return &Store{api: api, log: log}
}

// State is a point-in-time copy of everything the UI renders.
type State struct {
	Products     []market.Product    `json:"products"`
	Orders       []market.Order      `json:"orders"`
	ProductDraft market.ProductDraft `json:"product_draft"`
	BuyerDraft   market.BuyerDraft   `json:"buyer_draft"`
	Checkout     *market.Product     `json:"checkout,omitempty"`
	Message      string              `json:"message,omitempty"`
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{
		Products:     s.products,
		Orders:       s.orders,
		ProductDraft: s.productDraft,
		BuyerDraft:   s.buyerDraft,
		Message:      s.message,
	}
	if s.checkout != nil {
		cp := *s.checkout
		st.Checkout = &cp
	}
	return st
}

// LoadInitial fetches both lists concurrently. Completion order does not
// matter: the lists are disjoint state.
func (s *Store) LoadInitial(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error { return s.RefreshProducts(ctx) })
	g.Go(func() error { return s.RefreshOrders(ctx) })
	_ = g.Wait() // failures are logged; stale lists stay visible
}

// RefreshProducts replaces the product list. On failure the previous list is
// kept (stale-but-available).
func (s *Store) RefreshProducts(ctx context.Context) error {
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list products")
		return err
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return nil
}

func (s *Store) RefreshOrders(ctx context.Context) error {
	orders, err := s.api.ListOrders(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list orders")
		return err
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}

func (s *Store) SetProductField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.productDraft.Set(field, value)
	if err != nil {
		return err
	}
	s.productDraft = d
	return nil
}

func (s *Store) SetBuyerField(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.buyerDraft.Set(field, value)
	if err != nil {
		return err
	}
	s.buyerDraft = d
	return nil
}

// BeginCheckout opens (or retargets) the checkout session for a listed
// product. Retargeting to a different product clears the buyer draft; typed
// input never carries over between products.
func (s *Store) BeginCheckout(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == productID {
			if s.checkout != nil && s.checkout.ID != p.ID {
				s.buyerDraft = market.BuyerDraft{}
			}
			cp := p
			s.checkout = &cp
			return nil
		}
	}
	return ErrUnknownProduct
}

// CancelCheckout returns to idle and discards the buyer draft. No network
// call is made.
func (s *Store) CancelCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkout = nil
	s.buyerDraft = market.BuyerDraft{}
}

// ConfirmOrder validates the buyer draft and places the order. On success
// the session closes, the draft clears and the order list is re-fetched; on
// any failure the session and draft stay intact for correction.
func (s *Store) ConfirmOrder(ctx context.Context) {
	s.mu.Lock()
	s.message = ""
	if s.checkout == nil {
		s.mu.Unlock()
		return
	}
	if s.orderBusy {
		s.mu.Unlock()
		return
	}
	if !s.buyerDraft.Complete() {
		s.message = MsgBuyerIncomplete
		s.mu.Unlock()
		return
	}
	req := s.buyerDraft.Request(s.checkout.ID)
	s.orderBusy = true
	s.mu.Unlock()

	orderID, err := s.api.CreateOrder(ctx, req)

	s.mu.Lock()
	s.orderBusy = false
	if err != nil {
		s.log.Error().Err(err).Int64("product_id", req.ProductID).Msg("create order")
		s.message = rejectionMessage(err, MsgOrderFailed, MsgOrderFailed)
		s.mu.Unlock()
		return
	}
	s.message = fmt.Sprintf("Order placed successfully! Order ID: %d", orderID)
	s.checkout = nil
	s.buyerDraft = market.BuyerDraft{}
	s.mu.Unlock()

	_ = s.RefreshOrders(ctx)
}

// SubmitProduct coerces the draft and creates the product. The draft is
// cleared only on success so failed input can be corrected and resubmitted.
func (s *Store) SubmitProduct(ctx context.Context) {
	s.mu.Lock()
	s.message = ""
	if s.productBusy {
		s.mu.Unlock()
		return
	}
	req, err := s.productDraft.Coerce()
	if err != nil {
		s.message = err.Error()
		s.mu.Unlock()
		return
	}
	s.productBusy = true
	s.mu.Unlock()

	_, err = s.api.CreateProduct(ctx, req)

	s.mu.Lock()
	s.productBusy = false
	if err != nil {
		s.log.Error().Err(err).Msg("create product")
		s.message = rejectionMessage(err, MsgProductServer, MsgProductFailed)
		s.mu.Unlock()
		return
	}
	s.message = MsgProductAdded
	s.productDraft = market.ProductDraft{}
	s.mu.Unlock()

	_ = s.RefreshProducts(ctx)
}

// rejectionMessage picks what the user sees for a failed create: the
// server's message verbatim, the rejected fallback when the rejection body
// carried none, or the transport fallback otherwise.
func rejectionMessage(err error, rejected, transport string) string {
	var apiErr *catalog.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return rejected
	}
	return transport
}
