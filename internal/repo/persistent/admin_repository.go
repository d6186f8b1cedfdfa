package persistent

import (
	"streamhub/internal/entity"
	"streamhub/internal/model"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(admin *entity.Admin) error
	GetAll() ([]*entity.Admin, error)
	GetByID(id string) (*entity.Admin, error)
	GetByUser(userID string) (*entity.Admin, error)
	Update(admin *entity.Admin) error
	Delete(id string) error
	DeleteByUser(userID string) error
	WithTx(tx *gorm.DB) AdminRepository
}

type adminRepository struct {
	base[model.AdminModel]
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{base[model.AdminModel]{db: db}}
}

func (r *adminRepository) WithTx(tx *gorm.DB) AdminRepository {
	return &adminRepository{base[model.AdminModel]{db: tx}}
}

func (r *adminRepository) Create(admin *entity.Admin) error {
	adminModel := ToAdminModel(admin)
	if err := r.base.Create(adminModel); err != nil {
		return err
	}
	*admin = *ToAdminEntity(adminModel)
	return nil
}

func (r *adminRepository) GetAll() ([]*entity.Admin, error) {
	models, err := r.base.All()
	if err != nil {
		return nil, err
	}
	return ToAdminEntities(models), nil
}

func (r *adminRepository) GetByID(id string) (*entity.Admin, error) {
	adminModel, err := r.base.ByID(id)
	if err != nil {
		return nil, err
	}
	return ToAdminEntity(adminModel), nil
}

func (r *adminRepository) GetByUser(userID string) (*entity.Admin, error) {
	var adminModel model.AdminModel
	if err := r.db.Where("user_id = ?", userID).First(&adminModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToAdminEntity(&adminModel), nil
}

func (r *adminRepository) Update(admin *entity.Admin) error {
	return r.base.Save(ToAdminModel(admin))
}

func (r *adminRepository) Delete(id string) error {
	return r.base.Delete(id)
}

func (r *adminRepository) DeleteByUser(userID string) error {
	res := r.db.Where("user_id = ?", userID).Delete(&model.AdminModel{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
