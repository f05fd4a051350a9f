package market

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductDraft holds the add-product form as typed, before numeric coercion.
// Value semantics: Set returns an updated copy, the receiver is untouched.
type ProductDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	SellerID    string `json:"seller_id"`
}

func (d ProductDraft) Set(field, value string) (ProductDraft, error) {
	switch field {
	case "title":
		d.Title = value
	case "description":
		d.Description = value
	case "price":
		d.Price = value
	case "category":
		d.Category = value
	case "seller_id":
		d.SellerID = value
	default:
		return d, fmt.Errorf("unknown product field %q", field)
	}
	return d, nil
}

// Coerce turns the draft into the wire request. Non-numeric price or seller
// id is rejected here so it never reaches the server.
func (d ProductDraft) Coerce() (CreateProductRequest, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(d.Price))
	if err != nil {
		return CreateProductRequest{}, fmt.Errorf("price %q is not a number", d.Price)
	}
	if price.IsNegative() {
		return CreateProductRequest{}, fmt.Errorf("price must not be negative")
	}
	sellerID, err := strconv.ParseInt(strings.TrimSpace(d.SellerID), 10, 64)
	if err != nil {
		return CreateProductRequest{}, fmt.Errorf("seller id %q is not a number", d.SellerID)
	}
	return CreateProductRequest{
		Title:       d.Title,
		Description: d.Description,
		Price:       price,
		Category:    d.Category,
		SellerID:    sellerID,
	}, nil
}

// BuyerDraft holds checkout buyer input for the active session.
type BuyerDraft struct {
	Name    string `json:"buyer_name"`
	Phone   string `json:"buyer_phone"`
	Address string `json:"buyer_address"`
}

func (d BuyerDraft) Set(field, value string) (BuyerDraft, error) {
	switch field {
	case "buyer_name":
		d.Name = value
	case "buyer_phone":
		d.Phone = value
	case "buyer_address":
		d.Address = value
	default:
		return d, fmt.Errorf("unknown buyer field %q", field)
	}
	return d, nil
}

// Complete reports whether every field is non-empty after trimming.
func (d BuyerDraft) Complete() bool {
	return strings.TrimSpace(d.Name) != "" &&
		strings.TrimSpace(d.Phone) != "" &&
		strings.TrimSpace(d.Address) != ""
}

func (d BuyerDraft) Request(productID int64) CreateOrderRequest {
	return CreateOrderRequest{
		ProductID:    productID,
		BuyerName:    d.Name,
		BuyerPhone:   d.Phone,
		BuyerAddress: d.Address,
	}
}
