package market

import "github.com/shopspring/decimal"

func init() {
	// Prices go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	SellerID    int64           `json:"seller_id"`
}

type Order struct {
	ID           int64    `json:"id"`
	ProductID    int64    `json:"product_id"`
	BuyerName    string   `json:"buyer_name"`
	BuyerPhone   string   `json:"buyer_phone"`
	BuyerAddress string   `json:"buyer_address"`
	Status       string   `json:"status"` // server-owned enumeration, opaque here
	Product      *Product `json:"product"`
}

type CreateProductRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	SellerID    int64           `json:"seller_id"`
}

type CreateOrderRequest struct {
	ProductID    int64  `json:"product_id"`
	BuyerName    string `json:"buyer_name"`
	BuyerPhone   string `json:"buyer_phone"`
	BuyerAddress string `json:"buyer_address"`
}
