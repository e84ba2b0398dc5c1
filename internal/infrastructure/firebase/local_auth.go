package firebase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// LocalAuthClient is the identity provider used when the server runs without
// Firebase (local development, tests). Accounts live in memory and tokens are
// opaque "local." strings; nothing here is meant for production.
type LocalAuthClient struct {
	mu       sync.RWMutex
	byEmail  map[string]localAccount
	byUID    map[string]localAccount
}

type localAccount struct {
	uid          string
	email        string
	passwordHash []byte
}

func NewLocalAuthClient() *LocalAuthClient {
	return &LocalAuthClient{
		byEmail: make(map[string]localAccount),
		byUID:   make(map[string]localAccount),
	}
}

func (l *LocalAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.byEmail[email]; exists {
		return "", fmt.Errorf("account already exists for %s", email)
	}

	account := localAccount{
		uid:          uuid.New().String(),
		email:        email,
		passwordHash: hash,
	}
	l.byEmail[email] = account
	l.byUID[account.uid] = account

	return account.uid, nil
}

func (l *LocalAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	l.mu.RLock()
	account, ok := l.byEmail[email]
	l.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("unknown account %s", email)
	}
	if err := bcrypt.CompareHashAndPassword(account.passwordHash, []byte(password)); err != nil {
		return "", fmt.Errorf("wrong password for %s", email)
	}

	return "local." + account.uid, nil
}

func (l *LocalAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	uid, ok := strings.CutPrefix(token, "local.")
	if !ok {
		return "", fmt.Errorf("not a local token")
	}

	l.mu.RLock()
	_, exists := l.byUID[uid]
	l.mu.RUnlock()

	if !exists {
		return "", fmt.Errorf("unknown uid %s", uid)
	}
	return uid, nil
}
