package persistent

import (
	"streamhub/internal/entity"
	"streamhub/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetAll() ([]*entity.User, error)
	GetMany(skip, limit int) ([]*entity.User, error)
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByVerificationCode(code string) (*entity.User, error)
	Update(user *entity.User) error
	SetActive(id string, active bool) error
	SetSuperuser(id string, super bool) error
	ClearVerificationCode(id string) error
	Delete(id string) error
	// WithTx returns a repository bound to the given transaction so that
	// multi-table writes commit or roll back together.
	WithTx(tx *gorm.DB) UserRepository
}

type userRepository struct {
	base[model.UserModel]
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{base[model.UserModel]{db: db}}
}

func (r *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{base[model.UserModel]{db: tx}}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.base.Create(userModel); err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetAll() ([]*entity.User, error) {
	models, err := r.base.All()
	if err != nil {
		return nil, err
	}
	return ToUserEntities(models), nil
}

func (r *userRepository) GetMany(skip, limit int) ([]*entity.User, error) {
	models, err := r.base.Many(skip, limit)
	if err != nil {
		return nil, err
	}
	return ToUserEntities(models), nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	userModel, err := r.base.ByID(id)
	if err != nil {
		return nil, err
	}
	return ToUserEntity(userModel), nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByVerificationCode(code string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("verification_code = ?", code).First(&userModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	return r.base.Save(ToUserModel(user))
}

func (r *userRepository) SetActive(id string, active bool) error {
	return r.setFlag(id, "is_active", active)
}

func (r *userRepository) SetSuperuser(id string, super bool) error {
	return r.setFlag(id, "is_superuser", super)
}

func (r *userRepository) setFlag(id, column string, value bool) error {
	res := r.db.Model(&model.UserModel{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *userRepository) ClearVerificationCode(id string) error {
	res := r.db.Model(&model.UserModel{}).Where("id = ?", id).Update("verification_code", nil)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(id string) error {
	return r.base.Delete(id)
}
