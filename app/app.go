// Package app wires the storefront services together and owns the current
// view. One App is the Go rendition of the single top-level storefront
// controller.
package app

import (
	"sync"

	"github.com/danielterto2000/broadcastmotion-api/cart"
	"github.com/danielterto2000/broadcastmotion-api/catalog"
	"github.com/danielterto2000/broadcastmotion-api/checkout"
	"github.com/danielterto2000/broadcastmotion-api/models"
	"github.com/danielterto2000/broadcastmotion-api/session"
	"github.com/danielterto2000/broadcastmotion-api/store"
)

type App struct {
	// Mu serializes every handler-triggered state mutation. Hold it for
	// the duration of a handler; checkout releases it across the
	// simulated gateway delay.
	Mu sync.Mutex

	Store    store.Store
	Sessions *session.Manager
	Catalog  *catalog.Service
	Cart     *cart.Engine
	Checkout *checkout.Processor

	currentView models.AppView
}

func New(st store.Store) *App {
	a := &App{
		Store:       st,
		Sessions:    session.NewManager(st),
		Catalog:     catalog.NewService(),
		currentView: models.ViewMain,
	}
	a.Cart = cart.NewEngine(st, catalog.Coupons)
	a.Checkout = checkout.NewProcessor(st, a.Sessions, a.Cart, &a.Mu)
	return a
}

// View returns the current view. Call under Mu.
func (a *App) View() models.AppView { return a.currentView }

// SetView switches the current view. Call under Mu.
func (a *App) SetView(v models.AppView) { a.currentView = v }

// AfterLogin executes the deferred intent handed back by a successful
// login and navigates accordingly; with no intent, an admin-effective
// session lands on the admin dashboard. Call under Mu.
func (a *App) AfterLogin(intent models.PendingIntent, adminSession bool) models.AppView {
	switch intent.Kind {
	case models.IntentOpenCart:
		if intent.ItemID != "" {
			if item, ok := a.Catalog.FindItem(intent.ItemID); ok {
				a.Cart.Add(item)
			}
		}
		a.SetView(models.ViewCart)
	case models.IntentOpenCheckout:
		a.SetView(models.ViewCheckout)
	case models.IntentOpenView:
		a.SetView(intent.View)
	default:
		if adminSession {
			a.SetView(models.ViewAdminDashboard)
		}
	}
	return a.View()
}
