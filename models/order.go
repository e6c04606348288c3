package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values. Any status may be written over any other; there is no
// enforced ordering and no terminal state.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

var validStatuses = map[string]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

// IsValidStatus reports whether s is one of the four order statuses.
func IsValidStatus(s string) bool {
	return validStatuses[s]
}

// OrderItem is a line item snapshot taken at checkout time. The product
// reference is stored under "id" in the document.
type OrderItem struct {
	ProductID primitive.ObjectID `json:"id" bson:"id"`
	Name      string             `json:"name" bson:"name"`
	Price     float64            `json:"price" bson:"price"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	Image     string             `json:"image" bson:"image"`
	Size      string             `json:"size,omitempty" bson:"size,omitempty"`
	Volume    string             `json:"volume,omitempty" bson:"volume,omitempty"`
}

// GuestInfo carries the contact details of a guest checkout, embedded in the
// order instead of a user reference.
type GuestInfo struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
}

// Order is a customer order. Exactly one of UserID or GuestInfo is populated,
// keyed on the Guest flag.
type Order struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	OrderNumber   string             `json:"orderNumber" bson:"orderNumber"`
	UserID        primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty"`
	Guest         bool               `json:"guest" bson:"guest"`
	GuestInfo     *GuestInfo         `json:"guestInfo,omitempty" bson:"guestInfo,omitempty"`
	Items         []OrderItem        `json:"items" bson:"items"`
	Total         float64            `json:"total" bson:"total"`
	Shipping      float64            `json:"shipping" bson:"shipping"`
	PaymentMethod string             `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// OrderContact is the flattened customer block attached to order listings.
// For registered users it is looked up from the users collection; for guest
// orders it comes from the embedded GuestInfo.
type OrderContact struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

// OrderWithUser is an order enriched with its customer contact details.
type OrderWithUser struct {
	Order `bson:",inline"`
	User  OrderContact `json:"user"`
}

// GenerateOrderNumber builds a human-readable order number of the form
// ORD-<year><minute><second>-<millisecond>. Not globally unique; collisions
// are possible under concurrent creation.
func GenerateOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%d%d%d-%d",
		now.Year(), now.Minute(), now.Second(), now.Nanosecond()/1e6)
}
