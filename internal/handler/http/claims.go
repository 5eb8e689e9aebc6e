package http

import (
	"net/http"

	"github.com/chamcong-vn/attendance-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

// currentUserID pulls the authenticated user's ID out of the verified
// JWT claims. Handlers pass it down explicitly; services never read
// tokens themselves.
func currentUserID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}
