package auth

import "time"

// Identity is the authenticated principal extracted from a bearer token.
type Identity struct {
	UserID string
	Role   string
}

// Known roles issued by the identity service.
const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
)

// Strategy verifies bearer tokens minted by the identity service. Token
// issuance exists for the identity service and for tests; this service
// only ever verifies.
type Strategy interface {
	IssueToken(identity Identity) (string, error)
	ParseToken(token string) (Identity, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
