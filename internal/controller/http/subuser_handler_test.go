package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"streamhub/internal/entity"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSubuserUseCase is a mock implementation of SubuserUseCase
type MockSubuserUseCase struct {
	mock.Mock
}

func (m *MockSubuserUseCase) CreateSubuser(userID, name string) (*entity.Subuser, error) {
	args := m.Called(userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subuser), args.Error(1)
}

func (m *MockSubuserUseCase) ListSubusers(userID string) ([]*entity.Subuser, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Subuser), args.Error(1)
}

func (m *MockSubuserUseCase) GetSubuserByName(userID, name string) (*entity.Subuser, error) {
	args := m.Called(userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subuser), args.Error(1)
}

func (m *MockSubuserUseCase) RenameSubuser(userID, subuserID, name string) (*entity.Subuser, error) {
	args := m.Called(userID, subuserID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subuser), args.Error(1)
}

func (m *MockSubuserUseCase) DeleteSubuser(userID, subuserID string) error {
	args := m.Called(userID, subuserID)
	return args.Error(0)
}

func (m *MockSubuserUseCase) SubuserToken(userID, subuserID string) (string, error) {
	args := m.Called(userID, subuserID)
	return args.String(0), args.Error(1)
}

func subuserRouter(handler *SubuserHandler) *gin.Engine {
	router := setupTestRouter()
	router.POST("/subusers", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.CreateSubuser(c)
	})
	return router
}

func TestCreateSubuser_Success(t *testing.T) {
	mockUseCase := new(MockSubuserUseCase)
	handler := NewSubuserHandler(mockUseCase, logger.New())
	router := subuserRouter(handler)

	subuser := &entity.Subuser{ID: "sub-1", Name: "kids", UserID: "user-123"}
	mockUseCase.On("CreateSubuser", "user-123", "kids").Return(subuser, nil)

	body := `{"name":"kids"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subusers", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreateSubuser_LimitReached(t *testing.T) {
	mockUseCase := new(MockSubuserUseCase)
	handler := NewSubuserHandler(mockUseCase, logger.New())
	router := subuserRouter(handler)

	mockUseCase.On("CreateSubuser", "user-123", "third").Return(nil, entity.ErrSubuserLimit)

	body := `{"name":"third"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subusers", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateSubuser_SuperuserParent(t *testing.T) {
	mockUseCase := new(MockSubuserUseCase)
	handler := NewSubuserHandler(mockUseCase, logger.New())
	router := subuserRouter(handler)

	mockUseCase.On("CreateSubuser", "user-123", "kids").Return(nil, entity.ErrSuperuserSubuser)

	body := `{"name":"kids"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/subusers", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteSubuser_NotOwner(t *testing.T) {
	mockUseCase := new(MockSubuserUseCase)
	handler := NewSubuserHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/subusers/:id", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.DeleteSubuser(c)
	})

	mockUseCase.On("DeleteSubuser", "user-123", "sub-1").Return(entity.ErrForbidden)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/subusers/sub-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
