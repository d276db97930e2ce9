package session

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// ErrNoClaims is returned whenever a credential cannot be projected into
// claims: wrong segment count, bad base64, bad JSON, or a missing role.
var ErrNoClaims = errors.New("session: credential carries no usable claims")

// Claims is the payload the auth service embeds in the credential. Subject is
// the account email.
type Claims struct {
	Role   string `json:"role"`
	UserID int64  `json:"userId"`
	jwt.RegisteredClaims
}

// Decode projects the middle segment of the credential into Claims without
// verifying the signature. The result is a routing hint only; the gateway
// re-checks authorization on every protected call, so nothing here is a
// trust boundary.
func Decode(credential string) (*Claims, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(credential, &claims); err != nil {
		return nil, ErrNoClaims
	}
	if claims.Role == "" {
		return nil, ErrNoClaims
	}
	return &claims, nil
}
