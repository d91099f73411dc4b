package sdk

import "time"

// Property is a real-estate object listed on the platform.
type Property struct {
	ID      int     `json:"id"`
	Address string  `json:"address"`
	Type    string  `json:"type"`
	Price   float64 `json:"price"`
	OwnerID int     `json:"owner_id"`
	Status  string  `json:"status"`
}

// Property statuses used by the API.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusPurchased = "purchased"
)

// Purchase records the agency buying a property from a seller.
type Purchase struct {
	ID           int       `json:"id"`
	PropertyID   int       `json:"property_id"`
	SellerID     int       `json:"seller_id"`
	PurchaseDate time.Time `json:"purchase_date"`
	InitialPrice float64   `json:"initial_price"`
	OwnerID      int       `json:"owner_id"`
}

// Sale records a property sold to a buyer.
type Sale struct {
	ID         int       `json:"id"`
	PropertyID int       `json:"property_id"`
	BuyerID    int       `json:"buyer_id"`
	SaleDate   time.Time `json:"sale_date"`
	FinalPrice float64   `json:"final_price"`
	OwnerID    int       `json:"owner_id"`
}

// User is an account as seen by administrators.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	RoleID   Role   `json:"role_id"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	RoleID      Role   `json:"role_id"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MessageResponse is the generic acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListOptions controls list calls.
type ListOptions struct {
	// Mine restricts the listing to records owned by the caller.
	Mine bool
	// Filter is a bexpr expression evaluated client-side against each record,
	// using the JSON field names (e.g. `price < 100000 and status == "available"`).
	Filter string
}
