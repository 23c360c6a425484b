// Package session manages the lifecycle of the authenticated session: the
// bearer token and the user record it belongs to. The pair is kept in memory
// and persisted under two fixed keys, so that a restart of the process can
// restore it without a new login.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"github.com/akhbar-news/akhbar/api"
	"github.com/akhbar-news/akhbar/content"
	"github.com/akhbar-news/akhbar/lang"
	"github.com/akhbar-news/akhbar/log"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

// Store owns the session state. It is safe for concurrent use. The session
// is authenticated if and only if both the token and the user record are set.
type Store struct {
	client  *api.Client
	storage Storage
	log     log.Log

	mu            sync.RWMutex
	token         string
	user          content.User
	authenticated bool
	loaded        bool
}

func New(client *api.Client, storage Storage, log log.Log) *Store {
	return &Store{client: client, storage: storage, log: log}
}

// Login exchanges the credentials for a session. On success the session is
// persisted and the in-memory state replaced. On failure the state is left
// untouched and an *AuthError carrying a displayable message is returned.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, user, err := s.client.Login(ctx, email, password)
	if err == nil {
		err = s.establish(token, user)
	}

	if err != nil {
		return newAuthError(err, lang.T("login_failed"))
	}

	return nil
}

// Register creates an account and logs it in, with the same contract as
// Login.
func (s *Store) Register(ctx context.Context, email, password, name string) error {
	token, user, err := s.client.Register(ctx, email, password, name)
	if err == nil {
		err = s.establish(token, user)
	}

	if err != nil {
		return newAuthError(err, lang.T("register_failed"))
	}

	return nil
}

// Logout drops the session from memory and storage. Storage failures are
// logged and not surfaced; from the caller's perspective a logout always
// succeeds.
func (s *Store) Logout() {
	if err := s.storage.Delete(tokenKey); err != nil {
		s.log.Printf("deleting persisted token: %+v", err)
	}
	if err := s.storage.Delete(userKey); err != nil {
		s.log.Printf("deleting persisted user: %+v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = content.User{}
	s.authenticated = false
	s.loaded = true
}

// LoadToken restores the session from storage, typically at process start.
// The session is restored only if both persisted values are present and the
// user record parses; anything else, including read errors, leaves the store
// unauthenticated. A persisted token that carries an elapsed JWT expiry claim
// is treated as absent. LoadToken never fails; the loaded flag is set in all
// cases.
func (s *Store) LoadToken() {
	token, user, ok := s.restore()

	s.mu.Lock()
	defer s.mu.Unlock()

	if ok {
		s.token = token
		s.user = user
		s.authenticated = true
	}
	s.loaded = true
}

func (s *Store) restore() (string, content.User, bool) {
	token, err := s.storage.Get(tokenKey)
	if err != nil {
		s.log.Debugf("reading persisted token: %+v", err)
		return "", content.User{}, false
	}

	userData, err := s.storage.Get(userKey)
	if err != nil {
		s.log.Debugf("reading persisted user: %+v", err)
		return "", content.User{}, false
	}

	if len(token) == 0 || len(userData) == 0 {
		return "", content.User{}, false
	}

	var user content.User
	if err := json.Unmarshal(userData, &user); err != nil {
		s.log.Debugf("parsing persisted user: %v", err)
		return "", content.User{}, false
	}

	if tokenExpired(string(token)) {
		s.log.Infoln("discarding expired session token")
		return "", content.User{}, false
	}

	return string(token), user, true
}

// Verify performs a round trip to the service to confirm the restored
// session is still accepted, refreshing the persisted user record on the
// way. A rejected token clears the session; transient errors leave it alone.
func (s *Store) Verify(ctx context.Context) error {
	s.mu.RLock()
	token, authenticated := s.token, s.authenticated
	s.mu.RUnlock()

	if !authenticated {
		return nil
	}

	user, err := s.client.Me(ctx, token)
	if err != nil {
		if api.IsBadAuth(err) {
			s.Logout()
		}

		return errors.WithMessage(err, "verifying session")
	}

	if data, err := json.Marshal(user); err == nil {
		if err := s.storage.Put(userKey, data); err != nil {
			s.log.Printf("persisting refreshed user: %+v", err)
		}
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	return nil
}

// UpdateFavorites replaces the current user's favorites in memory. It exists
// so other components can reflect a favorites change without a full user
// refetch; neither storage nor the service is touched.
func (s *Store) UpdateFavorites(ids []content.ArticleID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authenticated {
		return
	}

	favorites := make([]content.ArticleID, len(ids))
	copy(favorites, ids)
	s.user.Favorites = favorites
}

// Token returns the bearer token of the session, or the empty string.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// User returns the user record of the session.
func (s *Store) User() content.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user := s.user
	user.Favorites = make([]content.ArticleID, len(s.user.Favorites))
	copy(user.Favorites, s.user.Favorites)

	return user
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.authenticated
}

// Loaded reports whether the initial restore attempt has completed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loaded
}

func (s *Store) establish(token string, user content.User) error {
	if err := s.storage.Put(tokenKey, []byte(token)); err != nil {
		return err
	}

	data, err := json.Marshal(user)
	if err != nil {
		return errors.Wrap(err, "serializing user")
	}

	if err := s.storage.Put(userKey, data); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = user
	s.authenticated = true
	s.loaded = true

	return nil
}

// tokenExpired inspects the expiry claim of a JWT bearer token without
// verifying its signature. Tokens that aren't JWTs are opaque credentials
// and are accepted as-is.
func tokenExpired(token string) bool {
	claims := &jwt.StandardClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return false
	}

	return claims.ExpiresAt > 0 && time.Now().Unix() >= claims.ExpiresAt
}
