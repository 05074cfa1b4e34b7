// internal/app/screen.go
package app

import "github.com/your-org/storefront-backend/internal/domain/catalog"

// Kind discriminates the screen union. Exactly one screen is active at a
// time; the orchestrator never holds two.
type Kind string

const (
	KindLogin         Kind = "login"
	KindRegister      Kind = "register"
	KindTabs          Kind = "tabs"
	KindProductDetail Kind = "product_detail"
	KindPayment       Kind = "payment"
	KindAdmin         Kind = "admin"
)

// Tab names the bottom tab bar entries.
type Tab string

const (
	TabHome    Tab = "Home"
	TabRecord  Tab = "Record"
	TabCart    Tab = "Cart"
	TabAccount Tab = "Account"
)

// IsValidTab reports whether t names a real tab.
func IsValidTab(t Tab) bool {
	switch t {
	case TabHome, TabRecord, TabCart, TabAccount:
		return true
	}
	return false
}

// AdminPage names the restricted management sub-screens.
type AdminPage string

const (
	AdminPanel             AdminPage = "AdminPanel"
	AdminProductManagement AdminPage = "ProductManagement"
	AdminOrderManagement   AdminPage = "OrderManagement"
)

// Screen is the tagged screen state: a kind plus the transient payload
// that kind carries. Payload fields of other kinds are always zero.
type Screen struct {
	Kind      Kind             `json:"kind"`
	Tab       Tab              `json:"tab,omitempty"`
	Product   *catalog.Product `json:"product,omitempty"`
	AdminPage AdminPage        `json:"admin_page,omitempty"`
}

func loginScreen() Screen {
	return Screen{Kind: KindLogin}
}

func registerScreen() Screen {
	return Screen{Kind: KindRegister}
}

func tabsScreen(tab Tab) Screen {
	return Screen{Kind: KindTabs, Tab: tab}
}

func productDetailScreen(p *catalog.Product) Screen {
	return Screen{Kind: KindProductDetail, Product: p}
}

func paymentScreen() Screen {
	return Screen{Kind: KindPayment}
}

func adminScreen(page AdminPage) Screen {
	return Screen{Kind: KindAdmin, AdminPage: page}
}
