// internal/app/orchestrator.go
package app

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/favorites"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// Orchestrator errors. Navigation events that are merely unrecognized in
// the current screen are silent no-ops, never errors; these cover the
// cases the workflow must actively refuse.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrVariantRequired   = errors.New("size and color must be selected")
	ErrAdminAccessDenied = errors.New("admin access required")
	ErrNotSignedIn       = errors.New("no active session")
)

// Session holds the authenticated identity for one running app instance.
type Session struct {
	ID       string        `json:"id"`
	Identity auth.Identity `json:"identity"`
}

// Orchestrator is the application state machine of a single app session.
// It owns the active screen, the cart aggregate, the last-viewed product
// and the session identity, and it is the only writer of any of them:
// each event locks the orchestrator, runs to completion and unlocks, so
// state changes are serialized exactly like the single-threaded event
// loop the mobile client runs.
type Orchestrator struct {
	mu sync.Mutex

	log        *logrus.Logger
	authClient auth.Authenticator
	policy     *auth.Policy
	catalog    *catalog.Service
	favorites  *favorites.Service
	orders     *order.Service

	screen     Screen
	cart       *cart.Cart
	lastViewed *catalog.Product
	session    *Session
	signingOut bool
}

// NewOrchestrator creates an orchestrator in the unauthenticated entry
// state.
func NewOrchestrator(
	authClient auth.Authenticator,
	policy *auth.Policy,
	catalogSvc *catalog.Service,
	favoritesSvc *favorites.Service,
	orderSvc *order.Service,
	log *logrus.Logger,
) *Orchestrator {
	return &Orchestrator{
		log:        log,
		authClient: authClient,
		policy:     policy,
		catalog:    catalogSvc,
		favorites:  favoritesSvc,
		orders:     orderSvc,
		screen:     loginScreen(),
		cart:       cart.New(),
	}
}

// Session returns the current session, or nil when signed out.
func (o *Orchestrator) Session() *Session {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.session == nil {
		return nil
	}
	s := *o.session
	return &s
}

// ShowRegister switches the unauthenticated screen to registration.
func (o *Orchestrator) ShowRegister() Screen {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.screen.Kind == KindLogin {
		o.screen = registerScreen()
	}
	return o.screen
}

// ShowLogin switches the registration screen back to login.
func (o *Orchestrator) ShowLogin() Screen {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.screen.Kind == KindRegister {
		o.screen = loginScreen()
	}
	return o.screen
}

// SignIn authenticates and, on success, enters the main tabs on Home.
func (o *Orchestrator) SignIn(ctx context.Context, creds auth.Credentials) (*Session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.session != nil {
		return nil, errors.New("session already signed in")
	}

	identity, err := o.authClient.SignIn(ctx, creds)
	if err != nil {
		// Session state unchanged on auth failure.
		return nil, err
	}

	return o.startSession(identity), nil
}

// SignUp registers a new account and enters the main tabs on Home,
// leaving the registration screen behind.
func (o *Orchestrator) SignUp(ctx context.Context, reg auth.Registration) (*Session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.session != nil {
		return nil, errors.New("session already signed in")
	}

	identity, err := o.authClient.SignUp(ctx, reg)
	if err != nil {
		return nil, err
	}

	return o.startSession(identity), nil
}

// SignOut tears down the session from any screen. The session, the
// selected product and the admin sub-screen are all cleared so nothing
// stale survives into a later login. A sign-out arriving while one is
// already in flight is dropped: there is only one session to tear down.
func (o *Orchestrator) SignOut(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.session == nil || o.signingOut {
		return nil
	}
	o.signingOut = true
	defer func() { o.signingOut = false }()

	if err := o.authClient.SignOut(ctx); err != nil {
		// Reported to the user; session state stays intact.
		return err
	}

	o.log.WithField("email", o.session.Identity.Email).Info("Session signed out")

	o.session = nil
	o.lastViewed = nil
	o.screen = loginScreen()
	return nil
}

// SelectTab activates a bottom tab. Outside the tabs screen, or for an
// unknown tab, the event is a no-op.
func (o *Orchestrator) SelectTab(tab Tab) Screen {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.screen.Kind == KindTabs && IsValidTab(tab) {
		o.screen = tabsScreen(tab)
	}
	return o.screen
}

// SelectProduct opens the product detail screen from the Home tab and
// remembers the product as last viewed.
func (o *Orchestrator) SelectProduct(id uint) (Screen, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.screen.Kind != KindTabs || o.screen.Tab != TabHome {
		return o.screen, nil
	}

	p, ok := o.catalog.Get(id)
	if !ok {
		return o.screen, ErrProductNotFound
	}

	o.lastViewed = &p
	o.screen = productDetailScreen(&p)
	return o.screen, nil
}

// AddToCart appends the selected product with its chosen variant to the
// cart, then shows the cart tab. The product screen resolves a default
// size and color before the user can add, so empty selections are a
// caller bug, refused here rather than stored.
func (o *Orchestrator) AddToCart(size, color string) (Screen, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.screen.Kind != KindProductDetail {
		return o.screen, nil
	}
	if size == "" || color == "" {
		return o.screen, ErrVariantRequired
	}

	product := *o.screen.Product
	o.cart.Add(product, size, color)
	o.lastViewed = &product
	o.screen = tabsScreen(TabCart)
	return o.screen, nil
}

// BuyNow dismisses the product detail screen without touching the cart.
func (o *Orchestrator) BuyNow() Screen {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.screen.Kind == KindProductDetail {
		o.screen = tabsScreen(TabHome)
	}
	return o.screen
}

// RemoveCartItem deletes the cart line at the given index.
func (o *Orchestrator) RemoveCartItem(index int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cart.RemoveAt(index)
}

// Checkout moves from the cart tab to the payment screen. There is
// nothing to pay for in an empty cart, so checkout refuses it.
func (o *Orchestrator) Checkout() (Screen, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.screen.Kind != KindTabs || o.screen.Tab != TabCart {
		return o.screen, nil
	}
	if o.cart.IsEmpty() {
		return o.screen, ErrCartEmpty
	}

	o.screen = paymentScreen()
	return o.screen, nil
}

// CompletePayment places the order from the cart contents, empties the
// cart and returns to Home.
func (o *Orchestrator) CompletePayment(ctx context.Context, paymentMethod, deliveryAddress string) (*order.Order, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.screen.Kind != KindPayment {
		// Not in the payment flow; nothing to complete.
		return nil, nil
	}
	if o.session == nil {
		return nil, ErrNotSignedIn
	}

	customerName := o.session.Identity.DisplayName
	if customerName == "" {
		customerName = o.session.Identity.Email
	}

	placed, err := o.orders.CreateFromCart(o.cart.Items(), &order.CreateRequest{
		CustomerName:    customerName,
		CustomerEmail:   o.session.Identity.Email,
		PaymentMethod:   paymentMethod,
		DeliveryAddress: deliveryAddress,
	})
	if err != nil {
		return nil, err
	}

	o.cart.Clear()
	o.screen = tabsScreen(TabHome)
	return placed, nil
}

// OpenAdmin enters the admin panel from the Account tab. The transition
// is refused, not just hidden, for identities outside the allow-list.
func (o *Orchestrator) OpenAdmin() (Screen, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.screen.Kind != KindTabs || o.screen.Tab != TabAccount {
		return o.screen, nil
	}
	if o.session == nil || !o.policy.IsAdmin(o.session.Identity.Email) {
		return o.screen, ErrAdminAccessDenied
	}

	o.screen = adminScreen(AdminPanel)
	return o.screen, nil
}

// NavigateAdmin moves from the admin panel to one of its management
// sub-screens.
func (o *Orchestrator) NavigateAdmin(page AdminPage) Screen {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.screen.Kind != KindAdmin || o.screen.AdminPage != AdminPanel {
		return o.screen
	}
	if page != AdminProductManagement && page != AdminOrderManagement {
		return o.screen
	}

	o.screen = adminScreen(page)
	return o.screen
}

// Back performs the single-level back navigation of the current screen:
//
//	product detail  -> Home
//	payment         -> Cart (cart preserved)
//	cart tab        -> last-viewed product detail, if one exists
//	admin sub-screen-> admin panel
//	admin panel     -> Account tab
//
// Everywhere else back is a no-op.
func (o *Orchestrator) Back() Screen {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch o.screen.Kind {
	case KindProductDetail:
		o.screen = tabsScreen(TabHome)
	case KindPayment:
		o.screen = tabsScreen(TabCart)
	case KindTabs:
		// Back from the cart reopens the last-viewed product. Without
		// one there is no defined target, so the event is dropped.
		if o.screen.Tab == TabCart && o.lastViewed != nil {
			o.screen = productDetailScreen(o.lastViewed)
		}
	case KindAdmin:
		if o.screen.AdminPage == AdminPanel {
			o.screen = tabsScreen(TabAccount)
		} else {
			o.screen = adminScreen(AdminPanel)
		}
	}
	return o.screen
}

// ToggleFavorite flips a product's membership in the user's persisted
// favorites and returns the new membership.
func (o *Orchestrator) ToggleFavorite(ctx context.Context, productID uint) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.session == nil {
		return false, ErrNotSignedIn
	}
	if _, ok := o.catalog.Get(productID); !ok {
		return false, ErrProductNotFound
	}

	return o.favorites.Toggle(ctx, o.session.Identity.UID, productID), nil
}

// ListFavorites returns the user's favorite product identifiers.
func (o *Orchestrator) ListFavorites(ctx context.Context) ([]uint, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.session == nil {
		return nil, ErrNotSignedIn
	}
	return o.favorites.List(ctx, o.session.Identity.UID), nil
}

// startSession is called with the lock held after a successful sign-in or
// sign-up.
func (o *Orchestrator) startSession(identity *auth.Identity) *Session {
	o.session = &Session{
		ID:       uuid.NewString(),
		Identity: *identity,
	}
	o.screen = tabsScreen(TabHome)

	o.log.WithFields(logrus.Fields{
		"session_id": o.session.ID,
		"email":      identity.Email,
	}).Info("Session started")

	s := *o.session
	return &s
}
