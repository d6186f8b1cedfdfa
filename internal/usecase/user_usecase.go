package usecase

import (
	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"
	"streamhub/pkg/logger"
	"streamhub/pkg/queue"

	"gorm.io/gorm"
)

// UserUpdate lists the mutable user fields; nil means "leave unchanged".
type UserUpdate struct {
	Username *string
	Email    *string
}

// AdminProfile carries the admin row fields for a promotion.
type AdminProfile struct {
	FirstName string
	LastName  string
	Address   string
	Country   string
}

type UserUseCase interface {
	ListUsers(skip, limit int) ([]*entity.User, error)
	GetUser(id string) (*entity.User, error)
	UpdateUser(id string, update UserUpdate) (*entity.User, error)
	DeleteUser(id string) error
	SetActive(id string, active bool) error
	PromoteToAdmin(userID string, profile AdminProfile) (*entity.Admin, error)
	DemoteAdmin(userID string) error
	ListAdmins() ([]*entity.Admin, error)
}

type userUseCase struct {
	db          TxRunner
	userRepo    persistent.UserRepository
	adminRepo   persistent.AdminRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewUserUseCase(
	db TxRunner,
	userRepo persistent.UserRepository,
	adminRepo persistent.AdminRepository,
	queueClient *queue.Client,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		db:          db,
		userRepo:    userRepo,
		adminRepo:   adminRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *userUseCase) ListUsers(skip, limit int) ([]*entity.User, error) {
	users, err := uc.userRepo.GetMany(skip, limit)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.Password = ""
	}
	return users, nil
}

func (uc *userUseCase) GetUser(id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (uc *userUseCase) UpdateUser(id string, update UserUpdate) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil {
		user.Email = *update.Email
	}

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (uc *userUseCase) DeleteUser(id string) error {
	return uc.userRepo.Delete(id)
}

func (uc *userUseCase) SetActive(id string, active bool) error {
	return uc.userRepo.SetActive(id, active)
}

// PromoteToAdmin creates the admin row and flips is_superuser in one
// transaction; a failure on either write rolls back both.
func (uc *userUseCase) PromoteToAdmin(userID string, profile AdminProfile) (*entity.Admin, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.IsSuperuser {
		return nil, entity.ErrConflict
	}

	admin := &entity.Admin{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Address:   profile.Address,
		Country:   profile.Country,
		UserID:    userID,
	}

	err = uc.db.Transaction(func(tx *gorm.DB) error {
		if err := uc.adminRepo.WithTx(tx).Create(admin); err != nil {
			return err
		}
		return uc.userRepo.WithTx(tx).SetSuperuser(userID, true)
	})
	if err != nil {
		uc.logger.Error("Failed to promote user %s: %v", userID, err)
		return nil, err
	}

	uc.publishAdminChange(userID, "promoted")
	return admin, nil
}

// DemoteAdmin removes the admin row and clears is_superuser atomically.
func (uc *userUseCase) DemoteAdmin(userID string) error {
	err := uc.db.Transaction(func(tx *gorm.DB) error {
		if err := uc.adminRepo.WithTx(tx).DeleteByUser(userID); err != nil {
			return err
		}
		return uc.userRepo.WithTx(tx).SetSuperuser(userID, false)
	})
	if err != nil {
		uc.logger.Error("Failed to demote user %s: %v", userID, err)
		return err
	}

	uc.publishAdminChange(userID, "demoted")
	return nil
}

func (uc *userUseCase) ListAdmins() ([]*entity.Admin, error) {
	return uc.adminRepo.GetAll()
}

func (uc *userUseCase) publishAdminChange(userID, change string) {
	if uc.queueClient == nil {
		return
	}
	go func() {
		event := map[string]interface{}{
			"type":    "admin_change",
			"user_id": userID,
			"change":  change,
		}
		if err := uc.queueClient.PublishAccountEvent(queue.RoutingKeyAdminChange, event); err != nil {
			uc.logger.Error("Failed to publish admin change event for user %s: %v", userID, err)
		}
	}()
}
