package usecase

import (
	"testing"

	"streamhub/internal/entity"
	"streamhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateSubuser_SuperuserParentRejected(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockSubuserRepo := new(MockSubuserRepository)
	uc := NewSubuserUseCase(txPassthrough{}, mockUserRepo, mockSubuserRepo, nil, 2, logger.New())

	mockUserRepo.On("GetByID", "user-123").Return(&entity.User{
		ID:          "user-123",
		IsSuperuser: true,
	}, nil)

	_, err := uc.CreateSubuser("user-123", "kids")

	assert.ErrorIs(t, err, entity.ErrSuperuserSubuser)
	mockSubuserRepo.AssertNotCalled(t, "Create")
}

func TestCreateSubuser_UnknownParent(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockSubuserRepo := new(MockSubuserRepository)
	uc := NewSubuserUseCase(txPassthrough{}, mockUserRepo, mockSubuserRepo, nil, 2, logger.New())

	mockUserRepo.On("GetByID", "missing").Return(nil, entity.ErrNotFound)

	_, err := uc.CreateSubuser("missing", "kids")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCreateSubuser_LimitReached(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockSubuserRepo := new(MockSubuserRepository)
	uc := NewSubuserUseCase(txPassthrough{}, mockUserRepo, mockSubuserRepo, nil, 2, logger.New())

	mockUserRepo.On("GetByID", "user-123").Return(&entity.User{ID: "user-123"}, nil)
	mockSubuserRepo.On("CountByUser", "user-123").Return(int64(2), nil)

	_, err := uc.CreateSubuser("user-123", "third")

	assert.ErrorIs(t, err, entity.ErrSubuserLimit)
	mockSubuserRepo.AssertNotCalled(t, "Create")
}

func TestCreateSubuser_UnderLimit(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockSubuserRepo := new(MockSubuserRepository)
	uc := NewSubuserUseCase(txPassthrough{}, mockUserRepo, mockSubuserRepo, nil, 2, logger.New())

	mockUserRepo.On("GetByID", "user-123").Return(&entity.User{ID: "user-123"}, nil)
	mockSubuserRepo.On("CountByUser", "user-123").Return(int64(1), nil)
	mockSubuserRepo.On("Create", mock.AnythingOfType("*entity.Subuser")).Return(nil)

	got, err := uc.CreateSubuser("user-123", "kids")

	assert.NoError(t, err)
	assert.Equal(t, "kids", got.Name)
	assert.Equal(t, "user-123", got.UserID)
	mockSubuserRepo.AssertExpectations(t)
}

func TestRenameSubuser_OtherOwnerForbidden(t *testing.T) {
	mockSubuserRepo := new(MockSubuserRepository)
	uc := NewSubuserUseCase(txPassthrough{}, nil, mockSubuserRepo, nil, 2, logger.New())

	mockSubuserRepo.On("GetByID", "sub-1").Return(&entity.Subuser{
		ID:     "sub-1",
		Name:   "kids",
		UserID: "owner-456",
	}, nil)

	_, err := uc.RenameSubuser("user-123", "sub-1", "teens")

	assert.ErrorIs(t, err, entity.ErrForbidden)
	mockSubuserRepo.AssertNotCalled(t, "Update")
}

func TestRenameSubuser_Success(t *testing.T) {
	mockSubuserRepo := new(MockSubuserRepository)
	uc := NewSubuserUseCase(txPassthrough{}, nil, mockSubuserRepo, nil, 2, logger.New())

	subuser := &entity.Subuser{ID: "sub-1", Name: "kids", UserID: "user-123"}
	mockSubuserRepo.On("GetByID", "sub-1").Return(subuser, nil)
	mockSubuserRepo.On("Update", subuser).Return(nil)

	got, err := uc.RenameSubuser("user-123", "sub-1", "teens")

	assert.NoError(t, err)
	assert.Equal(t, "teens", got.Name)
	mockSubuserRepo.AssertExpectations(t)
}

func TestDeleteSubuser_OtherOwnerForbidden(t *testing.T) {
	mockSubuserRepo := new(MockSubuserRepository)
	uc := NewSubuserUseCase(txPassthrough{}, nil, mockSubuserRepo, nil, 2, logger.New())

	mockSubuserRepo.On("GetByID", "sub-1").Return(&entity.Subuser{
		ID:     "sub-1",
		UserID: "owner-456",
	}, nil)

	err := uc.DeleteSubuser("user-123", "sub-1")

	assert.ErrorIs(t, err, entity.ErrForbidden)
	mockSubuserRepo.AssertNotCalled(t, "Delete")
}

func TestListSubusers(t *testing.T) {
	mockSubuserRepo := new(MockSubuserRepository)
	uc := NewSubuserUseCase(txPassthrough{}, nil, mockSubuserRepo, nil, 2, logger.New())

	expected := []*entity.Subuser{
		{ID: "sub-1", Name: "kids", UserID: "user-123"},
		{ID: "sub-2", Name: "teens", UserID: "user-123"},
	}
	mockSubuserRepo.On("GetByUser", "user-123").Return(expected, nil)

	got, err := uc.ListSubusers("user-123")

	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}
