package persistent

import (
	"streamhub/internal/entity"
	"streamhub/internal/model"

	"gorm.io/gorm"
)

type SubuserRepository interface {
	Create(subuser *entity.Subuser) error
	GetAll() ([]*entity.Subuser, error)
	GetByID(id string) (*entity.Subuser, error)
	GetByUser(userID string) ([]*entity.Subuser, error)
	GetByName(userID, name string) (*entity.Subuser, error)
	CountByUser(userID string) (int64, error)
	Update(subuser *entity.Subuser) error
	Delete(id string) error
	WithTx(tx *gorm.DB) SubuserRepository
}

type subuserRepository struct {
	base[model.SubuserModel]
}

func NewSubuserRepository(db *gorm.DB) SubuserRepository {
	return &subuserRepository{base[model.SubuserModel]{db: db}}
}

func (r *subuserRepository) WithTx(tx *gorm.DB) SubuserRepository {
	return &subuserRepository{base[model.SubuserModel]{db: tx}}
}

func (r *subuserRepository) Create(subuser *entity.Subuser) error {
	subuserModel := ToSubuserModel(subuser)
	if err := r.base.Create(subuserModel); err != nil {
		return err
	}
	*subuser = *ToSubuserEntity(subuserModel)
	return nil
}

func (r *subuserRepository) GetAll() ([]*entity.Subuser, error) {
	models, err := r.base.All()
	if err != nil {
		return nil, err
	}
	return ToSubuserEntities(models), nil
}

func (r *subuserRepository) GetByID(id string) (*entity.Subuser, error) {
	subuserModel, err := r.base.ByID(id)
	if err != nil {
		return nil, err
	}
	return ToSubuserEntity(subuserModel), nil
}

func (r *subuserRepository) GetByUser(userID string) ([]*entity.Subuser, error) {
	var models []model.SubuserModel
	if err := r.db.Where("user_id = ?", userID).Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return ToSubuserEntities(models), nil
}

func (r *subuserRepository) GetByName(userID, name string) (*entity.Subuser, error) {
	var subuserModel model.SubuserModel
	if err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&subuserModel).Error; err != nil {
		return nil, translate(err)
	}
	return ToSubuserEntity(&subuserModel), nil
}

func (r *subuserRepository) CountByUser(userID string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.SubuserModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, translate(err)
	}
	return count, nil
}

func (r *subuserRepository) Update(subuser *entity.Subuser) error {
	return r.base.Save(ToSubuserModel(subuser))
}

func (r *subuserRepository) Delete(id string) error {
	return r.base.Delete(id)
}
