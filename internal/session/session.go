// Package session holds the single piece of state shared across views: who is
// logged in. State changes only through the Login and Logout transitions, and
// Manager carries the state between requests in a signed cookie.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

const CookieName = "storefront_session"

// State is the session shape read by every view. The zero value is the
// logged-out state.
type State struct {
	IsLoggedIn bool
	UserID     string
	FullName   string
	Role       string
}

// Payload carries the identity returned by the backend on a successful login
// or registration.
type Payload struct {
	UserID   string
	FullName string
	Role     string
}

// Login moves the session to the fully populated logged-in state. There are
// no partial states: every field is set from the payload.
func (s *State) Login(p Payload) {
	s.IsLoggedIn = true
	s.UserID = p.UserID
	s.FullName = p.FullName
	s.Role = p.Role
}

// Logout resets the session to the initial logged-out shape regardless of
// prior state.
func (s *State) Logout() {
	*s = State{}
}

type claims struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs session state into a cookie and reads it back.
type Manager struct {
	secretKey []byte
	logger    zerolog.Logger
}

func NewManager(secret string, logger zerolog.Logger) *Manager {
	if secret == "" {
		secret = "default-secret-key-change-in-production"
		logger.Warn().Msg("SESSION_SECRET not set, using default key")
	}

	return &Manager{
		secretKey: []byte(secret),
		logger:    logger,
	}
}

// Issue writes the given state into the session cookie.
func (m *Manager) Issue(w http.ResponseWriter, state State) error {
	now := time.Now()
	c := &claims{
		UserID:   state.UserID,
		FullName: state.FullName,
		Role:     state.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		m.logger.Error().Err(err).Msg("Error signing session token")
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// Current reads the session state from the request cookie. A missing,
// expired or tampered cookie yields the logged-out state.
func (m *Manager) Current(r *http.Request) State {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return State{}
	}

	c := &claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return m.secretKey, nil
	})
	if err != nil || !token.Valid {
		m.logger.Warn().Err(err).Msg("Invalid session token")
		return State{}
	}

	var state State
	state.Login(Payload{UserID: c.UserID, FullName: c.FullName, Role: c.Role})
	return state
}
