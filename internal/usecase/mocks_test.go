package usecase

import (
	"database/sql"
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// txPassthrough runs the transaction body directly so tx-bound branches
// execute against the package mocks.
type txPassthrough struct{}

func (txPassthrough) Transaction(fc func(tx *gorm.DB) error, _ ...*sql.TxOptions) error {
	return fc(nil)
}

var _ TxRunner = txPassthrough{}

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetAll() ([]*entity.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetMany(skip, limit int) ([]*entity.User, error) {
	args := m.Called(skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByVerificationCode(code string) (*entity.User, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) SetActive(id string, active bool) error {
	args := m.Called(id, active)
	return args.Error(0)
}

func (m *MockUserRepository) SetSuperuser(id string, super bool) error {
	args := m.Called(id, super)
	return args.Error(0)
}

func (m *MockUserRepository) ClearVerificationCode(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) WithTx(tx *gorm.DB) persistent.UserRepository {
	return m
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockSubuserRepository is a mock implementation of persistent.SubuserRepository
type MockSubuserRepository struct {
	mock.Mock
}

func (m *MockSubuserRepository) Create(subuser *entity.Subuser) error {
	args := m.Called(subuser)
	return args.Error(0)
}

func (m *MockSubuserRepository) GetAll() ([]*entity.Subuser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Subuser), args.Error(1)
}

func (m *MockSubuserRepository) GetByID(id string) (*entity.Subuser, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subuser), args.Error(1)
}

func (m *MockSubuserRepository) GetByUser(userID string) ([]*entity.Subuser, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Subuser), args.Error(1)
}

func (m *MockSubuserRepository) GetByName(userID, name string) (*entity.Subuser, error) {
	args := m.Called(userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subuser), args.Error(1)
}

func (m *MockSubuserRepository) CountByUser(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubuserRepository) Update(subuser *entity.Subuser) error {
	args := m.Called(subuser)
	return args.Error(0)
}

func (m *MockSubuserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSubuserRepository) WithTx(tx *gorm.DB) persistent.SubuserRepository {
	return m
}

var _ persistent.SubuserRepository = (*MockSubuserRepository)(nil)

// MockMovieRepository is a mock implementation of persistent.MovieRepository
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) Create(movie *entity.Movie) error {
	args := m.Called(movie)
	return args.Error(0)
}

func (m *MockMovieRepository) GetAll() ([]*entity.Movie, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetMany(skip, limit int) ([]*entity.Movie, error) {
	args := m.Called(skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetByID(id string) (*entity.Movie, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetByTitle(title string) ([]*entity.Movie, error) {
	args := m.Called(title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetByDirector(directorID string) ([]*entity.Movie, error) {
	args := m.Called(directorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetByGenre(genreID string) ([]*entity.Movie, error) {
	args := m.Called(genreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetLatest(cutoff time.Time) ([]*entity.Movie, error) {
	args := m.Called(cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) AddActor(movieID, actorID string) error {
	args := m.Called(movieID, actorID)
	return args.Error(0)
}

func (m *MockMovieRepository) RemoveActor(movieID, actorID string) error {
	args := m.Called(movieID, actorID)
	return args.Error(0)
}

func (m *MockMovieRepository) Update(movie *entity.Movie) error {
	args := m.Called(movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.MovieRepository = (*MockMovieRepository)(nil)

// MockActorRepository is a mock implementation of persistent.ActorRepository
type MockActorRepository struct {
	mock.Mock
}

func (m *MockActorRepository) Create(actor *entity.Actor) error {
	args := m.Called(actor)
	return args.Error(0)
}

func (m *MockActorRepository) GetAll() ([]*entity.Actor, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Actor), args.Error(1)
}

func (m *MockActorRepository) GetMany(skip, limit int) ([]*entity.Actor, error) {
	args := m.Called(skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Actor), args.Error(1)
}

func (m *MockActorRepository) GetByID(id string) (*entity.Actor, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Actor), args.Error(1)
}

func (m *MockActorRepository) GetByName(name string) ([]*entity.Actor, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Actor), args.Error(1)
}

func (m *MockActorRepository) GetByCountry(country string) ([]*entity.Actor, error) {
	args := m.Called(country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Actor), args.Error(1)
}

func (m *MockActorRepository) GetByMovie(movieID string) ([]*entity.Actor, error) {
	args := m.Called(movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Actor), args.Error(1)
}

func (m *MockActorRepository) GetBySeries(seriesID string) ([]*entity.Actor, error) {
	args := m.Called(seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Actor), args.Error(1)
}

func (m *MockActorRepository) Update(actor *entity.Actor) error {
	args := m.Called(actor)
	return args.Error(0)
}

func (m *MockActorRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.ActorRepository = (*MockActorRepository)(nil)

// MockEpisodeRepository is a mock implementation of persistent.EpisodeRepository
type MockEpisodeRepository struct {
	mock.Mock
}

func (m *MockEpisodeRepository) Create(episode *entity.Episode) error {
	args := m.Called(episode)
	return args.Error(0)
}

func (m *MockEpisodeRepository) GetAll() ([]*entity.Episode, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) GetByID(id string) (*entity.Episode, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) GetBySeries(seriesID string) ([]*entity.Episode, error) {
	args := m.Called(seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) GetByName(name string) ([]*entity.Episode, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) Update(episode *entity.Episode) error {
	args := m.Called(episode)
	return args.Error(0)
}

func (m *MockEpisodeRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ persistent.EpisodeRepository = (*MockEpisodeRepository)(nil)

// MockWatchRepository is a mock implementation of persistent.WatchRepository
type MockWatchRepository struct {
	mock.Mock
}

func (m *MockWatchRepository) UpsertMovieWatch(userID, movieID string, rating *int) (*entity.MovieWatch, error) {
	args := m.Called(userID, movieID, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.MovieWatch), args.Error(1)
}

func (m *MockWatchRepository) UpsertEpisodeWatch(userID, episodeID string, rating *int) (*entity.EpisodeWatch, error) {
	args := m.Called(userID, episodeID, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EpisodeWatch), args.Error(1)
}

func (m *MockWatchRepository) GetMovieHistory(userID string) ([]*entity.MovieWatch, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.MovieWatch), args.Error(1)
}

func (m *MockWatchRepository) GetEpisodeHistory(userID string) ([]*entity.EpisodeWatch, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.EpisodeWatch), args.Error(1)
}

var _ persistent.WatchRepository = (*MockWatchRepository)(nil)

// MockAdminRepository is a mock implementation of persistent.AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(admin *entity.Admin) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *MockAdminRepository) GetAll() ([]*entity.Admin, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByID(id string) (*entity.Admin, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByUser(userID string) (*entity.Admin, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockAdminRepository) Update(admin *entity.Admin) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *MockAdminRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAdminRepository) DeleteByUser(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockAdminRepository) WithTx(tx *gorm.DB) persistent.AdminRepository {
	return m
}

var _ persistent.AdminRepository = (*MockAdminRepository)(nil)
