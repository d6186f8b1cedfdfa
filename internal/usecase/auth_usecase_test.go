package usecase

import (
	"testing"
	"time"

	"streamhub/internal/entity"
	"streamhub/pkg/jwt"
	"streamhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func verifiedUser(t *testing.T, password string) *entity.User {
	return &entity.User{
		ID:             "user-123",
		Email:          "viewer@example.com",
		Username:       "viewer",
		Password:       hashPassword(t, password),
		DateSubscribed: time.Now(),
		IsActive:       true,
	}
}

func TestLogin_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	jwtService := jwt.NewService("test-secret")
	uc := NewAuthUseCase(mockUserRepo, jwtService, nil, logger.New())

	user := verifiedUser(t, "password123")
	mockUserRepo.On("GetByEmail", user.Email).Return(user, nil)

	got, token, err := uc.Login(user.Email, "password123")

	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Empty(t, got.Password)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, string(entity.RoleRegularUser), claims.Role)
	mockUserRepo.AssertExpectations(t)
}

func TestLogin_SuperuserRoleClaim(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	jwtService := jwt.NewService("test-secret")
	uc := NewAuthUseCase(mockUserRepo, jwtService, nil, logger.New())

	user := verifiedUser(t, "password123")
	user.IsSuperuser = true
	mockUserRepo.On("GetByEmail", user.Email).Return(user, nil)

	_, token, err := uc.Login(user.Email, "password123")

	assert.NoError(t, err)
	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, string(entity.RoleSuperUser), claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockUserRepo, jwt.NewService("test-secret"), nil, logger.New())

	user := verifiedUser(t, "password123")
	mockUserRepo.On("GetByEmail", user.Email).Return(user, nil)

	_, _, err := uc.Login(user.Email, "wrong-password")

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockUserRepo, jwt.NewService("test-secret"), nil, logger.New())

	mockUserRepo.On("GetByEmail", "nobody@example.com").Return(nil, entity.ErrNotFound)

	_, _, err := uc.Login("nobody@example.com", "password123")

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestLogin_UnverifiedAccount(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockUserRepo, jwt.NewService("test-secret"), nil, logger.New())

	code := "pending-code"
	user := verifiedUser(t, "password123")
	user.VerificationCode = &code
	mockUserRepo.On("GetByEmail", user.Email).Return(user, nil)

	_, _, err := uc.Login(user.Email, "password123")

	assert.ErrorIs(t, err, entity.ErrAccountNotVerified)
}

func TestLogin_InactiveAccount(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockUserRepo, jwt.NewService("test-secret"), nil, logger.New())

	user := verifiedUser(t, "password123")
	user.IsActive = false
	mockUserRepo.On("GetByEmail", user.Email).Return(user, nil)

	_, _, err := uc.Login(user.Email, "password123")

	assert.ErrorIs(t, err, entity.ErrAccountInactive)
}

func TestRegister_HashesPasswordAndSetsCode(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockUserRepo, jwt.NewService("test-secret"), nil, logger.New())

	var created *entity.User
	mockUserRepo.On("Create", mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*entity.User)
	}).Return(nil)

	user, err := uc.Register("viewer@example.com", "viewer", "password123")

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.NotEqual(t, "password123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
	assert.NotNil(t, created.VerificationCode)
	assert.False(t, user.Verified())
	assert.Empty(t, user.Password)
	mockUserRepo.AssertExpectations(t)
}

func TestVerifyAccount_ClearsCode(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockUserRepo, jwt.NewService("test-secret"), nil, logger.New())

	code := "some-code"
	user := verifiedUser(t, "password123")
	user.VerificationCode = &code
	mockUserRepo.On("GetByVerificationCode", code).Return(user, nil)
	mockUserRepo.On("ClearVerificationCode", user.ID).Return(nil)

	got, err := uc.VerifyAccount(code)

	assert.NoError(t, err)
	assert.True(t, got.Verified())
	mockUserRepo.AssertExpectations(t)
}

func TestVerifyAccount_UnknownCode(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := NewAuthUseCase(mockUserRepo, jwt.NewService("test-secret"), nil, logger.New())

	mockUserRepo.On("GetByVerificationCode", "bogus").Return(nil, entity.ErrNotFound)

	_, err := uc.VerifyAccount("bogus")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}
