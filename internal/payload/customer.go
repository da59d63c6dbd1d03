package payload

import (
	"crypto/sha256"
	"encoding/hex"

	domain "github.com/donaldgifford/cart-abandonment-notifier/pkg/types"
)

// CustomerContext identifies who a cart belongs to. It is either LoggedIn
// or Guest.
type CustomerContext interface {
	// Email is the address the recovery email goes to.
	Email() string
	// ContactPrefix leads the contact key: the customer hash or the email.
	ContactPrefix() string
	isCustomerContext()
}

// LoggedIn is a cart owned by a registered customer.
type LoggedIn struct {
	Customer  domain.Customer
	FirstName string
	LastName  string
	// QuoteEmail is the address stored on the cart. It wins over the
	// customer record when set.
	QuoteEmail string
	// Hash is the hex sha256 of the customer's external id, empty when the
	// customer has none.
	Hash string
}

// NewLoggedIn builds the context for a registered customer's quote.
func NewLoggedIn(c *domain.Customer, q *domain.Quote) LoggedIn {
	return LoggedIn{
		Customer:   *c,
		FirstName:  q.CustomerFirstName,
		LastName:   q.CustomerLastName,
		QuoteEmail: q.CustomerEmail,
		Hash:       HashExternalID(c.ExternalID),
	}
}

func (l LoggedIn) Email() string {
	if l.QuoteEmail != "" {
		return l.QuoteEmail
	}
	return l.Customer.Email
}

func (l LoggedIn) ContactPrefix() string { return l.Hash }

func (LoggedIn) isCustomerContext() {}

// Guest is a cart checked out without an account.
type Guest struct {
	Billing domain.Address
}

func (g Guest) Email() string { return g.Billing.Email }

func (g Guest) ContactPrefix() string { return g.Billing.Email }

func (Guest) isCustomerContext() {}

// HashExternalID returns the hex sha256 of id, or "" for an empty id.
func HashExternalID(id string) string {
	if id == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])
}
