package models

import "time"

type OrderStatus string
type PaymentMethod string

const (
	// Order statuses. Only completed and failed are produced by the
	// simulated checkout flow; the rest exist for the full lifecycle.
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusFailed         OrderStatus = "failed"
	OrderStatusCancelled      OrderStatus = "cancelled"

	// Payment methods
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

type BuyerDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

type DownloadLink struct {
	TemplateID string `json:"templateId"`
	Name       string `json:"name"`
	Link       string `json:"link"`
}

// Order is an immutable record of a checkout attempt, successful or not.
// Appended to the persisted ledger, never mutated or removed.
type Order struct {
	ID              string         `json:"id"` // "ORD-<millis>" or "FAIL-<millis>"
	UserID          string         `json:"userId"`
	Items           []CartItem     `json:"items"` // Snapshot of the cart at purchase time
	Subtotal        float64        `json:"subtotal"`
	DiscountApplied float64        `json:"discountApplied"`
	CouponCode      string         `json:"couponCode,omitempty"`
	Total           float64        `json:"total"`
	OrderDate       time.Time      `json:"orderDate"`
	Status          OrderStatus    `json:"status"`
	PaymentMethod   PaymentMethod  `json:"paymentMethod"`
	DownloadLinks   []DownloadLink `json:"downloadLinks,omitempty"` // Only on success
	BuyerDetails    BuyerDetails   `json:"buyerDetails"`
}

type CardDetails struct {
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	NameOnCard string `json:"nameOnCard"`
}

type PaymentDetails struct {
	Method      PaymentMethod `json:"method" binding:"required"`
	BuyerInfo   BuyerDetails  `json:"buyerInfo"`
	CardDetails *CardDetails  `json:"cardDetails,omitempty"` // Only when method is credit_card
}
