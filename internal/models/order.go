package models

// Order distinguishes "previous orders" from "cart" solely through
// IsPaymentCompleted.
type Order struct {
	ID                 string `json:"id,omitempty"`
	UserID             string `json:"userId"`
	ProductID          string `json:"productId"`
	Quantity           int    `json:"quantity"`
	IsPaymentCompleted bool   `json:"isPaymentCompleted"`

	Product Product `json:"-"`
}
