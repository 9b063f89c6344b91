package models

// AppView is the view router's vocabulary. There is no URL routing; the
// storefront switches between these named views.
type AppView string

const (
	ViewMain             AppView = "main"
	ViewCreatorSignup    AppView = "creatorSignup"
	ViewCreatorDashboard AppView = "creatorDashboard"
	ViewCart             AppView = "cart"
	ViewCheckout         AppView = "checkout"
	ViewOrderSuccess     AppView = "orderSuccess"
	ViewPaymentError     AppView = "paymentError"
	ViewUserOrders       AppView = "userOrders"
	ViewUserProfile      AppView = "userProfile"
	ViewSupportHub       AppView = "supportHub"
	ViewMogrtPage        AppView = "mogrtPage"
	ViewChromaKeyPage    AppView = "chromaKeyPage"
	ViewAdminDashboard   AppView = "adminDashboard"
)

type IntentKind string

const (
	IntentNone         IntentKind = "none"
	IntentOpenCart     IntentKind = "openCart"
	IntentOpenCheckout IntentKind = "openCheckout"
	IntentOpenView     IntentKind = "openView"
)

// PendingIntent is a deferred action stored when an operation requires
// authentication. It is executed automatically right after login succeeds.
// Tagged value rather than a stored closure so it can be persisted and
// inspected. ItemID carries the item of a deferred add-to-cart.
type PendingIntent struct {
	Kind   IntentKind `json:"kind"`
	View   AppView    `json:"view,omitempty"`   // Only for IntentOpenView
	ItemID string     `json:"itemId,omitempty"` // Only for IntentOpenCart
}

func NoIntent() PendingIntent { return PendingIntent{Kind: IntentNone} }
