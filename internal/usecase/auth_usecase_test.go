package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memrepo "tailorlink/internal/adapter/repository"
	"tailorlink/internal/domain/entity"
	"tailorlink/internal/domain/repository"
	"tailorlink/internal/infrastructure/firebase"
)

func newAuthFixture() (*AuthUseCase, repository.TailorRepository) {
	tailorRepo := memrepo.NewMemoryTailorRepository()
	uc := NewAuthUseCase(memrepo.NewMemoryUserRepository(), tailorRepo, firebase.NewLocalAuthClient())
	return uc, tailorRepo
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthFixture()

	registered, err := uc.Register(ctx, RegisterInput{
		Email:    "amira@example.com",
		Password: "s3cret-pass",
		FullName: "Amira Hassan",
		Role:     entity.RoleCustomer,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, entity.RoleCustomer, registered.User.Role)

	loggedIn, err := uc.Login(ctx, "amira@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	_, err = uc.Login(ctx, "amira@example.com", "wrong")
	assert.Error(t, err)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthFixture()

	_, err := uc.Register(ctx, RegisterInput{
		Email:    "amira@example.com",
		Password: "s3cret-pass",
		FullName: "Amira Hassan",
		Role:     entity.RoleCustomer,
	})
	require.NoError(t, err)

	_, err = uc.Register(ctx, RegisterInput{
		Email:    "amira@example.com",
		Password: "another-pass",
		FullName: "Someone Else",
		Role:     entity.RoleCustomer,
	})
	assert.Error(t, err)
}

func TestRegisterTailorProvisionsProfile(t *testing.T) {
	ctx := context.Background()
	uc, tailorRepo := newAuthFixture()

	result, err := uc.Register(ctx, RegisterInput{
		Email:    "yusuf@example.com",
		Password: "s3cret-pass",
		FullName: "Yusuf Tailoring",
		Role:     entity.RoleTailor,
	})
	require.NoError(t, err)

	tailor, err := tailorRepo.GetByUserID(ctx, result.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yusuf Tailoring", tailor.BusinessName)
	assert.Equal(t, 0, tailor.ReviewCount)
	assert.Equal(t, 0.0, tailor.Rating)
	assert.Empty(t, tailor.Specialties)
}

func TestLoginBackfillsMissingTailorProfile(t *testing.T) {
	ctx := context.Background()

	userRepo := memrepo.NewMemoryUserRepository()
	tailorRepo := memrepo.NewMemoryTailorRepository()
	authClient := firebase.NewLocalAuthClient()
	uc := NewAuthUseCase(userRepo, tailorRepo, authClient)

	// Simulate a tailor account that predates profile provisioning.
	uid, err := authClient.CreateUser(ctx, "old@example.com", "s3cret-pass", "Old Tailor")
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(ctx, &entity.User{
		ID:       uid,
		Email:    "old@example.com",
		FullName: "Old Tailor",
		Role:     entity.RoleTailor,
	}))

	_, err = uc.Login(ctx, "old@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = tailorRepo.GetByUserID(ctx, uid)
	assert.NoError(t, err)
}
