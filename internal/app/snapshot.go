// internal/app/snapshot.go
package app

import (
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// CartView is the rendered cart state.
type CartView struct {
	Items []cart.LineItem `json:"items"`
	Count int             `json:"count"`
	Total int64           `json:"total"` // Cents
}

// Snapshot is the full render state of a session: everything a client
// needs to draw the active screen. It is a copy; holding one never
// observes later events.
type Snapshot struct {
	Screen       Screen         `json:"screen"`
	User         *auth.Identity `json:"user,omitempty"`
	IsAdmin      bool           `json:"is_admin"`
	Cart         CartView       `json:"cart"`
	LastViewedID uint           `json:"last_viewed_product_id,omitempty"`
}

// Snapshot returns the current render state.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	snap := Snapshot{
		Screen: o.screen,
		Cart: CartView{
			Items: o.cart.Items(),
			Count: o.cart.Len(),
			Total: o.cart.Total(),
		},
	}

	if o.session != nil {
		identity := o.session.Identity
		snap.User = &identity
		snap.IsAdmin = o.policy.IsAdmin(identity.Email)
	}
	if o.lastViewed != nil {
		snap.LastViewedID = o.lastViewed.ID
	}

	return snap
}
