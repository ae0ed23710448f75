// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// AuthSessionKey is the key/value entry holding the signed-in auth session.
const AuthSessionKey = "inventario.authSession"

type authGateway struct {
	backend  adapter.BackendAdapter
	kv       store.KeyValueRepository
	identity SessionIdentity
	cache    LocalCache
	now      func() time.Time

	mu      sync.Mutex
	loaded  bool
	session *models.AuthSession

	// refreshMu serializes token refreshes.
	refreshMu sync.Mutex

	logger *logger.Logger
}

func NewAuthGateway(backend adapter.BackendAdapter, kv store.KeyValueRepository, identity SessionIdentity, cache LocalCache, logger *logger.Logger) AuthGateway {
	return &authGateway{
		backend:  backend,
		kv:       kv,
		identity: identity,
		cache:    cache,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *authGateway) SignIn(ctx context.Context, creds models.Credentials) (models.User, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	authSession, err := a.backend.SignInWithPassword(ctx, creds)
	if err != nil {
		a.logger.Err(err).Str("func", "authGateway.SignIn").Str("email", creds.Email).Msg("sign in rejected")
		return models.User{}, fmt.Errorf("error signing in: %w", err)
	}
	a.completeSession(&authSession)

	// every sign-in starts a new visibility scope
	if _, err = a.identity.Renew(ctx); err != nil {
		return models.User{}, err
	}
	if err = a.store(ctx, &authSession); err != nil {
		return models.User{}, err
	}

	return authSession.User, nil
}

// SignOut ends the remote session best-effort, then forgets the local auth
// state, the session token and the local item cache.
func (a *authGateway) SignOut(ctx context.Context) error {
	sess := a.Session(ctx)
	if sess.AccessToken != "" {
		if err := a.backend.SignOut(ctx, sess); err != nil {
			a.logger.Warn().Err(err).Str("func", "authGateway.SignOut").Msg("remote sign out failed")
		}
	}

	a.mu.Lock()
	a.session, a.loaded = nil, true
	a.mu.Unlock()

	var errs []error
	if err := a.kv.Delete(ctx, AuthSessionKey); err != nil {
		errs = append(errs, fmt.Errorf("error clearing auth session: %w", err))
	}
	if err := a.identity.Clear(ctx); err != nil {
		errs = append(errs, err)
	}
	a.cache.Clear(ctx)

	return errors.Join(errs...)
}

func (a *authGateway) CurrentUser(ctx context.Context) *models.User {
	authSession := a.active(ctx)
	if authSession == nil {
		return nil
	}

	user, err := a.backend.GetUser(ctx, adapter.Session{
		AccessToken: authSession.AccessToken,
		SessionID:   a.identity.Current(),
	})
	if err != nil {
		a.logger.Debug().Err(err).Str("func", "authGateway.CurrentUser").Msg("user not confirmed")
		return nil
	}

	if _, err = a.identity.Ensure(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "authGateway.CurrentUser").Msg("failed to restore session token")
	}

	return &user
}

// SignedIn reports whether a persisted session is still usable, either
// unexpired or renewable with its refresh token. It makes no remote call.
func (a *authGateway) SignedIn(ctx context.Context) bool {
	authSession := a.load(ctx)
	if authSession == nil {
		return false
	}
	return !authSession.Expired(a.now()) || authSession.RefreshToken != ""
}

func (a *authGateway) IsAdmin(ctx context.Context) bool {
	user := a.CurrentUser(ctx)
	if user == nil {
		return false
	}
	return a.CheckAdmin(ctx, *user)
}

func (a *authGateway) CheckAdmin(ctx context.Context, user models.User) bool {
	if user.Email == "" {
		return false
	}

	admin, err := a.backend.IsAdmin(ctx, a.Session(ctx), user.Email)
	if err != nil {
		a.logger.Debug().Err(err).Str("func", "authGateway.CheckAdmin").Msg("admin check failed")
		return false
	}
	return admin
}

func (a *authGateway) Session(ctx context.Context) adapter.Session {
	sess := adapter.Session{SessionID: a.identity.Current()}

	if authSession := a.active(ctx); authSession != nil {
		sess.AccessToken = authSession.AccessToken
	}
	return sess
}

// load returns the persisted auth session, reading storage once.
func (a *authGateway) load(ctx context.Context) *models.AuthSession {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.loaded {
		return a.session
	}

	raw, err := a.kv.Get(ctx, AuthSessionKey)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			a.logger.Err(err).Str("func", "authGateway.load").Msg("failed to read auth session")
			return nil
		}
		a.loaded = true
		return nil
	}

	var authSession models.AuthSession
	if err = json.Unmarshal([]byte(raw), &authSession); err != nil {
		a.logger.Warn().Err(err).Str("func", "authGateway.load").Msg("discarding unreadable auth session")
		a.loaded = true
		return nil
	}
	a.completeSession(&authSession)

	a.session, a.loaded = &authSession, true
	return a.session
}

// active returns the auth session with an unexpired access token, refreshing
// an expired one when it carries a refresh token. The session token is kept.
func (a *authGateway) active(ctx context.Context) *models.AuthSession {
	authSession := a.load(ctx)
	if authSession == nil || !authSession.Expired(a.now()) {
		return authSession
	}
	if authSession.RefreshToken == "" {
		return nil
	}

	a.refreshMu.Lock()
	defer a.refreshMu.Unlock()

	// another caller may have refreshed it meanwhile
	if authSession = a.load(ctx); authSession == nil || !authSession.Expired(a.now()) {
		return authSession
	}

	refreshed, err := a.backend.RefreshSession(ctx, authSession.RefreshToken)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "authGateway.active").Msg("failed to refresh auth session")
		return nil
	}
	a.completeSession(&refreshed)
	if refreshed.User.ID == "" {
		refreshed.User = authSession.User
	}
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = authSession.RefreshToken
	}

	if err = a.store(ctx, &refreshed); err != nil {
		// the old refresh token is spent, keep the new one for this process
		a.logger.Err(err).Str("func", "authGateway.active").Msg("refreshed auth session not persisted")
		a.mu.Lock()
		a.session, a.loaded = &refreshed, true
		a.mu.Unlock()
	}
	return &refreshed
}

// store persists authSession and makes it the active one. The in-memory
// session is only replaced once the write succeeds.
func (a *authGateway) store(ctx context.Context, authSession *models.AuthSession) error {
	raw, err := json.Marshal(authSession)
	if err != nil {
		return fmt.Errorf("error encoding auth session: %w", err)
	}
	if err = a.kv.Set(ctx, AuthSessionKey, string(raw)); err != nil {
		return fmt.Errorf("error persisting auth session: %w", err)
	}

	a.mu.Lock()
	a.session, a.loaded = authSession, true
	a.mu.Unlock()

	return nil
}

// completeSession fills the expiry and user from the access token claims
// when the auth service left them out.
func (a *authGateway) completeSession(s *models.AuthSession) {
	if s.ExpiresAt == 0 && s.ExpiresIn > 0 {
		s.ExpiresAt = a.now().Unix() + s.ExpiresIn
	}

	if s.ExpiresAt != 0 && s.User.ID != "" {
		return
	}

	claims, err := utils.ParseAccessClaimsUnverified(s.AccessToken)
	if err != nil {
		return
	}
	if s.ExpiresAt == 0 && !claims.ExpiresAt.IsZero() {
		s.ExpiresAt = claims.ExpiresAt.Unix()
	}
	if s.User.ID == "" {
		s.User = models.User{ID: claims.Subject, Email: claims.Email}
	}
}
