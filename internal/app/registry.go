// internal/app/registry.go
package app

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/favorites"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// Registry tracks the live orchestrators, one per signed-in app session.
// The HTTP layer resolves the session ID carried in each request's token
// to its orchestrator here.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Orchestrator

	directory *auth.Directory
	policy    *auth.Policy
	catalog   *catalog.Service
	favorites *favorites.Service
	orders    *order.Service
	log       *logrus.Logger
}

// NewRegistry creates an empty session registry.
func NewRegistry(
	directory *auth.Directory,
	policy *auth.Policy,
	catalogSvc *catalog.Service,
	favoritesSvc *favorites.Service,
	orderSvc *order.Service,
	log *logrus.Logger,
) *Registry {
	return &Registry{
		sessions:  make(map[string]*Orchestrator),
		directory: directory,
		policy:    policy,
		catalog:   catalogSvc,
		favorites: favoritesSvc,
		orders:    orderSvc,
		log:       log,
	}
}

// NewOrchestrator creates a fresh orchestrator with its own auth client,
// not yet registered: it has no session until sign-in succeeds.
func (r *Registry) NewOrchestrator() *Orchestrator {
	return NewOrchestrator(
		r.directory.NewClient(),
		r.policy,
		r.catalog,
		r.favorites,
		r.orders,
		r.log,
	)
}

// Register stores an orchestrator under its session ID after a
// successful sign-in.
func (r *Registry) Register(sessionID string, o *Orchestrator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = o
}

// Get resolves a session ID to its orchestrator.
func (r *Registry) Get(sessionID string) (*Orchestrator, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.sessions[sessionID]
	return o, ok
}

// Remove drops a session after sign-out. Removing an unknown session is
// harmless.
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}
