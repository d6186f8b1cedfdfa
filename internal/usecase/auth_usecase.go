package usecase

import (
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"
	"streamhub/pkg/jwt"
	"streamhub/pkg/logger"
	"streamhub/pkg/metrics"
	"streamhub/pkg/queue"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(email, username, password string) (*entity.User, error)
	VerifyAccount(code string) (*entity.User, error)
	Login(email, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo    persistent.UserRepository
	jwtService  *jwt.Service
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	queueClient *queue.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:    userRepo,
		jwtService:  jwtService,
		queueClient: queueClient,
		logger:      logger,
	}
}

// Register creates an unverified account and publishes a verification event
// for the mailer. The account cannot log in until VerifyAccount runs.
func (uc *authUseCase) Register(email, username, password string) (*entity.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, err
	}

	code := uuid.New().String()
	user := &entity.User{
		Email:            email,
		Username:         username,
		Password:         string(hashedPassword),
		DateSubscribed:   time.Now(),
		IsActive:         true,
		VerificationCode: &code,
	}

	if err := uc.userRepo.Create(user); err != nil {
		metrics.AuthEvents.WithLabelValues("register", "failure").Inc()
		return nil, err
	}
	metrics.AuthEvents.WithLabelValues("register", "success").Inc()

	if uc.queueClient != nil {
		go func() {
			event := map[string]interface{}{
				"type":    "verification",
				"user_id": user.ID,
				"email":   user.Email,
				"code":    code,
			}
			if err := uc.queueClient.PublishAccountEvent(queue.RoutingKeyVerification, event); err != nil {
				uc.logger.Error("Failed to publish verification event for user %s: %v", user.ID, err)
			}
		}()
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) VerifyAccount(code string) (*entity.User, error) {
	user, err := uc.userRepo.GetByVerificationCode(code)
	if err != nil {
		metrics.AuthEvents.WithLabelValues("verify", "failure").Inc()
		return nil, err
	}

	if err := uc.userRepo.ClearVerificationCode(user.ID); err != nil {
		return nil, err
	}
	metrics.AuthEvents.WithLabelValues("verify", "success").Inc()

	user.VerificationCode = nil
	user.Password = ""
	return user, nil
}

// Login checks credentials and account state in a fixed order: credentials
// first, then verification, then active flag. The token's role claim comes
// from the is_superuser flag.
func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		metrics.AuthEvents.WithLabelValues("login", "failure").Inc()
		return nil, "", entity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		metrics.AuthEvents.WithLabelValues("login", "failure").Inc()
		return nil, "", entity.ErrInvalidCredentials
	}

	if !user.Verified() {
		metrics.AuthEvents.WithLabelValues("login", "unverified").Inc()
		return nil, "", entity.ErrAccountNotVerified
	}

	if !user.IsActive {
		metrics.AuthEvents.WithLabelValues("login", "inactive").Inc()
		return nil, "", entity.ErrAccountInactive
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role()))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", err
	}
	metrics.AuthEvents.WithLabelValues("login", "success").Inc()

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}
