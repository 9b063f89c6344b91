package models

type ItemType string

const (
	ItemTypeTemplate  ItemType = "template"
	ItemTypeChromaKey ItemType = "chromaKey"
	ItemTypeMogrt     ItemType = "mogrt"
)

type CartItem struct {
	ID       string   `json:"id"` // Catalog item id; unique within the cart
	Name     string   `json:"name"`
	ImageURL string   `json:"imageUrl"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"` // Always 1; duplicate adds are rejected
	Type     ItemType `json:"type,omitempty"`
}

type Coupon struct {
	Code         string  `json:"code"`
	DiscountType string  `json:"discountType"` // "percentage" | "fixed"
	Value        float64 `json:"value"`
	Description  string  `json:"description,omitempty"`
	MinPurchase  float64 `json:"minPurchase,omitempty"` // 0 = no floor
	IsActive     bool    `json:"isActive"`
	UsageCount   int     `json:"usageCount"`
	ExpiryDate   string  `json:"expiryDate,omitempty"`
}

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)
