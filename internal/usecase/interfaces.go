package usecase

import "context"

// AuthClient is the identity provider surface the usecases need. Implemented
// by the Firebase wrapper in production and by the local client when the
// server runs without Firebase.
type AuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
}

// MessageNotifier pushes a payload to a connected user; offline users are
// skipped silently.
type MessageNotifier interface {
	SendToUser(userID string, message []byte)
}
