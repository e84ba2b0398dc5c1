package usecase

import (
	"context"

	"tailorlink/internal/domain/entity"
	"tailorlink/internal/domain/repository"
	"tailorlink/pkg/errors"
	"tailorlink/pkg/logger"
)

type AuthUseCase struct {
	userRepo   repository.UserRepository
	tailorRepo repository.TailorRepository
	authClient AuthClient
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	tailorRepo repository.TailorRepository,
	authClient AuthClient,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		tailorRepo: tailorRepo,
		authClient: authClient,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Role     string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.authClient.CreateUser(ctx, input.Email, input.Password, input.FullName)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	user := &entity.User{
		ID:       uid,
		Email:    input.Email,
		FullName: input.FullName,
		Phone:    input.Phone,
		Role:     input.Role,
		Status:   "active",
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	if user.Role == entity.RoleTailor {
		if err := uc.provisionTailorProfile(ctx, user); err != nil {
			return nil, err
		}
	}

	token, err := uc.authClient.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.authClient.SignInWithEmailPassword(email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.authClient.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	// A tailor who somehow has no profile yet gets one on login, so the
	// profile always exists by the time the client loads it.
	if user.Role == entity.RoleTailor {
		if _, err := uc.tailorRepo.GetByUserID(ctx, user.ID); errors.Is(err, "NOT_FOUND") {
			if err := uc.provisionTailorProfile(ctx, user); err != nil {
				return nil, err
			}
		}
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

// provisionTailorProfile creates the empty profile that backs a tailor user.
// Specialties, portfolio and price range start empty; the aggregate starts at
// zero and is derived from reviews thereafter.
func (uc *AuthUseCase) provisionTailorProfile(ctx context.Context, user *entity.User) error {
	tailor := &entity.TailorProfile{
		UserID:       user.ID,
		BusinessName: user.FullName,
		Specialties:  []string{},
		Portfolio:    []entity.PortfolioItem{},
	}
	if err := uc.tailorRepo.Create(ctx, tailor); err != nil {
		return errors.Internal("Failed to provision tailor profile", err)
	}
	return nil
}
