package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	mockService "passport/internal/mocks/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	t            *testing.T
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return authServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// onExecute makes the transaction manager run the given function against a
// factory prepared by setup, propagating the function's return value.
func (f authServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correct-horse-battery",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("$2a$10$digest", nil)
	fx.tokenService.EXPECT().Issue(userID).Return("issued-token", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				// The store assigns the ID at insert time.
				user.ID = userID
			}).
			Return(nil)
		mockUserRepo.EXPECT().UpdateToken(ctx, userID, "issued-token").Return(nil)
	})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "issued-token", output.User.Token)
	assert.Equal(t, "$2a$10$digest", output.User.PasswordHash)
	assert.NotEqual(t, input.Password, output.User.PasswordHash)

	// The API key is a freshly generated UUID.
	_, parseErr := uuid.Parse(output.User.APIKey)
	assert.NoError(t, parseErr)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correct-horse-battery",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("cost out of range"))

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correct-horse-battery",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("$2a$10$digest", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))
	})

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_TokenIssueFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "correct-horse-battery",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("$2a$10$digest", nil)
	fx.tokenService.EXPECT().Issue(userID).Return("", errors.New("signing failed"))

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = userID
			}).
			Return(nil)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to issue token during registration")
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{
		ID:           userID,
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$digest",
		Token:        "stale-token",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(existingUser, nil)
	fx.hasher.EXPECT().Check("correct-horse-battery", "$2a$10$digest").Return(true)
	fx.tokenService.EXPECT().Issue(userID).Return("fresh-token", nil)
	fx.userRepo.EXPECT().UpdateToken(ctx, userID, "fresh-token").Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "correct-horse-battery",
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", output.Token)
	assert.Equal(t, "fresh-token", output.User.Token)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	for _, input := range []*usecase.LoginInput{
		{Email: "", Password: "secret"},
		{Email: "ada@example.com", Password: ""},
		{Email: "", Password: ""},
	} {
		output, err := fx.service.Login(ctx, input)

		assert.Nil(t, output)
		assert.True(t, errors.Is(err, domainerrors.ErrBadRequest))
	}
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	_, unknownEmailErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(&entity.User{
		ID:           userID,
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$digest",
	}, nil)
	fx.hasher.EXPECT().Check("wrong-password", "$2a$10$digest").Return(false)

	_, wrongPasswordErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})

	assert.True(t, errors.Is(unknownEmailErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongPasswordErr, domainerrors.ErrInvalidCredentials))

	// Both failure modes surface the exact same error text, so a caller
	// cannot tell whether the email exists.
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}

func TestAuthService_Login_TokenStoreFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(&entity.User{
		ID:           userID,
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$digest",
	}, nil)
	fx.hasher.EXPECT().Check("correct-horse-battery", "$2a$10$digest").Return(true)
	fx.tokenService.EXPECT().Issue(userID).Return("fresh-token", nil)
	fx.userRepo.EXPECT().UpdateToken(ctx, userID, "fresh-token").Return(errors.New("db error"))

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "correct-horse-battery",
	})

	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to store token during login")
}
