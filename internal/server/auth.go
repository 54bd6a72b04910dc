package server

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"clash-arena/internal/persistence"
	"clash-arena/pkg/logger"
)

// AuthManager handles account authentication. Accounts are created on first
// login with a bcrypt-hashed password and persisted as JSON profiles.
type AuthManager struct {
	basePath    string
	activeUsers map[string]string // username -> client id
	usersMutex  sync.RWMutex
}

// NewAuthManager creates a new authentication manager
func NewAuthManager(basePath string) *AuthManager {
	return &AuthManager{
		basePath:    basePath,
		activeUsers: make(map[string]string),
	}
}

// Authenticate verifies credentials, creating the account if it does not
// exist yet, and returns the player's profile.
func (am *AuthManager) Authenticate(username, password string) (*persistence.Profile, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password cannot be empty")
	}

	profile, err := persistence.LoadProfile(am.basePath, username)
	if err != nil {
		logger.Auth.Error("error loading profile for %s: %v", username, err)
		return nil, errors.New("error loading player profile")
	}

	if profile == nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.New("error creating account")
		}

		profile = persistence.NewProfile(username, string(hashedPassword))
		if err := persistence.SaveProfile(am.basePath, profile); err != nil {
			logger.Auth.Error("error saving new profile for %s: %v", username, err)
			return nil, errors.New("error creating account")
		}

		logger.Auth.Info("created new account for %s", username)
		return profile, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.HashedPassword), []byte(password)); err != nil {
		return nil, errors.New("invalid username or password")
	}
	return profile, nil
}

// RegisterActiveUser marks a user as logged in from the given client
func (am *AuthManager) RegisterActiveUser(username, clientID string) error {
	am.usersMutex.Lock()
	defer am.usersMutex.Unlock()

	if existing, ok := am.activeUsers[username]; ok && existing != clientID {
		return errors.New("user already logged in from another client")
	}

	am.activeUsers[username] = clientID
	return nil
}

// UnregisterActiveUser removes a user from the active set
func (am *AuthManager) UnregisterActiveUser(username string) {
	am.usersMutex.Lock()
	defer am.usersMutex.Unlock()
	delete(am.activeUsers, username)
}

// IsUserActive reports whether a user is currently logged in
func (am *AuthManager) IsUserActive(username string) bool {
	am.usersMutex.RLock()
	defer am.usersMutex.RUnlock()
	_, ok := am.activeUsers[username]
	return ok
}
