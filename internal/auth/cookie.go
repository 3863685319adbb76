package auth

import (
	"net/http"
	"time"
)

// Cookie names used by the credential lifecycle.
const (
	SessionCookie = "accessToken"
	ResetCookie   = "resetToken"
)

// SetTokenCookie issues a token-bearing cookie. The attribute bundle is fixed:
// not readable by scripts, sent only over TLS, usable cross-site. The max-age
// must equal the token's own ttl so neither outlives the other.
func SetTokenCookie(w http.ResponseWriter, name, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// ClearTokenCookie deletes a cookie previously issued by SetTokenCookie.
// Browsers only honor the deletion when the attribute bundle matches the one
// used at creation, so everything except max-age is re-issued identically.
func ClearTokenCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
