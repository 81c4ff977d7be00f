package auth

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gorilla/securecookie"

	"github.com/VNoormal7/NeedsConnectV2/internal/kv"
	"github.com/VNoormal7/NeedsConnectV2/internal/utils"
	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

// Sessions is the authentication collaborator. It maps a username to a role
// ("admin" is the administrator, anyone else is a helper), mirrors the
// signed-in user under the "currentUser" key, and transports the session in
// an encrypted cookie.
type Sessions struct {
	store  kv.Store
	cookie *securecookie.SecureCookie
	config *types.Config
}

type session struct {
	ID   string
	User types.User
}

func NewSessions(store kv.Store, config *types.Config) *Sessions {
	hashKey, _ := base64.StdEncoding.DecodeString(config.CookieHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.CookieBlockKey)

	// Without configured keys, sessions are valid for this process only.
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
	}
	if len(blockKey) == 0 {
		blockKey = securecookie.GenerateRandomKey(32)
	}

	return &Sessions{
		store:  store,
		cookie: securecookie.New(hashKey, blockKey),
		config: config,
	}
}

// Login starts a session for the given username. The role is derived from
// the username alone; identity verification is out of scope here.
func (s *Sessions) Login(ctx context.Context, w http.ResponseWriter, username string) (*types.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, types.NewValidationError("username", "must not be empty")
	}

	role := types.RoleHelper
	if strings.EqualFold(username, "admin") {
		role = types.RoleAdmin
	}

	user := types.User{Username: username, Role: role}
	if err := s.store.Set(ctx, kv.KeyCurrentUser, user); err != nil {
		return nil, err
	}

	encoded, err := s.cookie.Encode(s.config.CookieName, session{ID: utils.NanoID(), User: user})
	if err != nil {
		return nil, utils.ErrorWrapOrNil(err, "failed to encode session cookie")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   s.config.SessionMaxAgeSec,
		HttpOnly: true,
		Secure:   s.config.Environment != "development",
		SameSite: http.SameSiteLaxMode,
	})

	return &user, nil
}

func (s *Sessions) Logout(ctx context.Context, w http.ResponseWriter) error {
	if err := s.store.Remove(ctx, kv.KeyCurrentUser); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.config.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	return nil
}

// Current returns the user carried by the request's session cookie, or nil
// when there is no valid session.
func (s *Sessions) Current(r *http.Request) *types.User {
	cookie, err := r.Cookie(s.config.CookieName)
	if err != nil {
		return nil
	}

	var sess session
	if err := s.cookie.Decode(s.config.CookieName, cookie.Value, &sess); err != nil {
		return nil
	}

	return &sess.User
}
