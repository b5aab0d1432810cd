package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/domain/models"
)

const tokenKey = "token"

// SessionUser is the identity injected into r.Context() for signed-in
// requests. Its fields come from the locally decoded token claims and
// are display-only; the backend re-checks the token on every call.
//
// A request can be authenticated with blank identity fields: a
// malformed token still counts as signed in (the backend is the
// authority on rejecting it), it just cannot be displayed.
type SessionUser struct {
	ID         string
	Email      string
	FirstName  string
	LastName   string
	PictureURL string
	Token      string
}

// Name returns the display name for the session user.
func (u *SessionUser) Name() string {
	return models.Claims{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}.FullName()
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the signed-in user and a found flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// WithTestUser injects a user into the request context. Test helper;
// production requests go through LoadSessionUser.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// SessionManager owns the cookie session that carries the backend
// bearer token. It is the only place the token is read or written.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds the cookie store. The secure flag controls
// Secure + SameSite; use false for http://localhost development.
func NewSessionManager(sessionKey, sessionName, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: sessionName, log: logger}, nil
}

// GetSession fetches the session for the request. A securecookie
// decode error still yields a usable fresh session, so callers can
// treat the error as advisory.
func (m *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	return m.store.Get(r, m.name)
}

// Token returns the stored backend token. The second result is false
// when the user is not signed in.
func (m *SessionManager) Token(r *http.Request) (string, bool) {
	sess, err := m.GetSession(r)
	if err != nil {
		if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
			m.log.Warn("session cookie invalid", zap.Error(err))
		}
		return "", false
	}
	tok, _ := sess.Values[tokenKey].(string)
	return tok, tok != ""
}

// SaveToken stores a backend token, replacing any previous one. Used
// by login and by profile updates that return a rotated token.
func (m *SessionManager) SaveToken(w http.ResponseWriter, r *http.Request, token string) error {
	sess, err := m.GetSession(r)
	if err != nil {
		if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
			m.log.Warn("session cookie invalid, using fresh session", zap.Error(err))
		} else {
			m.log.Error("session store error, using fresh session", zap.Error(err))
		}
	}
	sess.Values[tokenKey] = token
	return sess.Save(r, w)
}

// Clear drops the session, signing the user out.
func (m *SessionManager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.GetSession(r)
	delete(sess.Values, tokenKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// LoadSessionUser injects the user into context if a token is present.
// The token's claims are parsed without signature verification; a
// parse failure leaves the identity fields blank but keeps the user
// signed in, since local decode is for display only.
func (m *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok, ok := m.Token(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		u := &SessionUser{Token: tok}
		if claims, err := DecodeClaims(tok); err == nil {
			u.ID = claims.ID
			u.Email = claims.Email
			u.FirstName = claims.FirstName
			u.LastName = claims.LastName
			u.PictureURL = claims.ProfilePictureURL
		} else {
			m.log.Warn("token claims decode failed", zap.Error(err))
		}

		next.ServeHTTP(w, withUser(r, u))
	})
}

// RequireSignedIn redirects to /login when there is no user in
// context, preserving the requested URI as a return parameter.
func (m *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		ret := url.QueryEscape(r.URL.RequestURI())
		http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
	})
}

// DecodeClaims parses the token payload without verifying its
// signature. The backend validated the token when it issued it and
// re-validates on every API call; locally we only need the identity
// fields for display.
func DecodeClaims(token string) (models.Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return models.Claims{}, fmt.Errorf("parse token: %w", err)
	}

	return models.Claims{
		ID:                claimString(claims, "id"),
		Email:             claimString(claims, "sub"),
		FirstName:         claimString(claims, "first_name"),
		LastName:          claimString(claims, "last_name"),
		ProfilePictureURL: claimString(claims, "profile_picture_url"),
	}, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	v, ok := claims[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}
