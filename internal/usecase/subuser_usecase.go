package usecase

import (
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"
	"streamhub/pkg/jwt"
	"streamhub/pkg/logger"

	"gorm.io/gorm"
)

type SubuserUseCase interface {
	CreateSubuser(userID, name string) (*entity.Subuser, error)
	ListSubusers(userID string) ([]*entity.Subuser, error)
	GetSubuserByName(userID, name string) (*entity.Subuser, error)
	RenameSubuser(userID, subuserID, name string) (*entity.Subuser, error)
	DeleteSubuser(userID, subuserID string) error
	SubuserToken(userID, subuserID string) (string, error)
}

type subuserUseCase struct {
	db          TxRunner
	userRepo    persistent.UserRepository
	subuserRepo persistent.SubuserRepository
	jwtService  *jwt.Service
	limit       int
	logger      *logger.Logger
}

func NewSubuserUseCase(
	db TxRunner,
	userRepo persistent.UserRepository,
	subuserRepo persistent.SubuserRepository,
	jwtService *jwt.Service,
	limit int,
	logger *logger.Logger,
) SubuserUseCase {
	return &subuserUseCase{
		db:          db,
		userRepo:    userRepo,
		subuserRepo: subuserRepo,
		jwtService:  jwtService,
		limit:       limit,
		logger:      logger,
	}
}

// CreateSubuser enforces two rules before writing: superuser accounts get no
// subusers, and an account may hold at most the configured number. The count
// check and the insert share one transaction, so a failed insert leaves no
// partial state. Under READ COMMITTED two concurrent creates can still both
// pass the count; the limit is a per-account quota, not a hard constraint.
func (uc *subuserUseCase) CreateSubuser(userID, name string) (*entity.Subuser, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user.IsSuperuser {
		return nil, entity.ErrSuperuserSubuser
	}

	subuser := &entity.Subuser{
		Name:           name,
		DateSubscribed: time.Now(),
		UserID:         userID,
	}

	err = uc.db.Transaction(func(tx *gorm.DB) error {
		repo := uc.subuserRepo.WithTx(tx)
		count, err := repo.CountByUser(userID)
		if err != nil {
			return err
		}
		if count >= int64(uc.limit) {
			return entity.ErrSubuserLimit
		}
		return repo.Create(subuser)
	})
	if err != nil {
		return nil, err
	}
	return subuser, nil
}

func (uc *subuserUseCase) ListSubusers(userID string) ([]*entity.Subuser, error) {
	return uc.subuserRepo.GetByUser(userID)
}

func (uc *subuserUseCase) GetSubuserByName(userID, name string) (*entity.Subuser, error) {
	return uc.subuserRepo.GetByName(userID, name)
}

// RenameSubuser only touches a subuser owned by the calling account.
func (uc *subuserUseCase) RenameSubuser(userID, subuserID, name string) (*entity.Subuser, error) {
	subuser, err := uc.subuserRepo.GetByID(subuserID)
	if err != nil {
		return nil, err
	}
	if subuser.UserID != userID {
		return nil, entity.ErrForbidden
	}

	subuser.Name = name
	if err := uc.subuserRepo.Update(subuser); err != nil {
		return nil, err
	}
	return subuser, nil
}

// SubuserToken issues a token scoped to the sub_user role. The claim keeps
// the parent account id so watch history still lands on the account; the
// restricted role blocks everything but viewing.
func (uc *subuserUseCase) SubuserToken(userID, subuserID string) (string, error) {
	subuser, err := uc.subuserRepo.GetByID(subuserID)
	if err != nil {
		return "", err
	}
	if subuser.UserID != userID {
		return "", entity.ErrForbidden
	}
	return uc.jwtService.GenerateToken(userID, string(entity.RoleSubUser))
}

func (uc *subuserUseCase) DeleteSubuser(userID, subuserID string) error {
	subuser, err := uc.subuserRepo.GetByID(subuserID)
	if err != nil {
		return err
	}
	if subuser.UserID != userID {
		return entity.ErrForbidden
	}
	return uc.subuserRepo.Delete(subuserID)
}
