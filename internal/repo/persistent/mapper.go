package persistent

import (
	"streamhub/internal/entity"
	"streamhub/internal/model"
)

func ToActorEntity(m *model.ActorModel) *entity.Actor {
	if m == nil {
		return nil
	}

	return &entity.Actor{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		DateOfBirth: m.DateOfBirth,
		Country:     m.Country,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToActorModel(e *entity.Actor) *model.ActorModel {
	if e == nil {
		return nil
	}

	return &model.ActorModel{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		DateOfBirth: e.DateOfBirth,
		Country:     e.Country,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToActorEntities(models []model.ActorModel) []*entity.Actor {
	actors := make([]*entity.Actor, len(models))
	for i := range models {
		actors[i] = ToActorEntity(&models[i])
	}
	return actors
}

func ToDirectorEntity(m *model.DirectorModel) *entity.Director {
	if m == nil {
		return nil
	}

	return &entity.Director{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Country:   m.Country,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToDirectorModel(e *entity.Director) *model.DirectorModel {
	if e == nil {
		return nil
	}

	return &model.DirectorModel{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Country:   e.Country,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToDirectorEntities(models []model.DirectorModel) []*entity.Director {
	directors := make([]*entity.Director, len(models))
	for i := range models {
		directors[i] = ToDirectorEntity(&models[i])
	}
	return directors
}

func ToGenreEntity(m *model.GenreModel) *entity.Genre {
	if m == nil {
		return nil
	}

	return &entity.Genre{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToGenreModel(e *entity.Genre) *model.GenreModel {
	if e == nil {
		return nil
	}

	return &model.GenreModel{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToGenreEntities(models []model.GenreModel) []*entity.Genre {
	genres := make([]*entity.Genre, len(models))
	for i := range models {
		genres[i] = ToGenreEntity(&models[i])
	}
	return genres
}

func ToMovieEntity(m *model.MovieModel) *entity.Movie {
	if m == nil {
		return nil
	}

	movie := &entity.Movie{
		ID:            m.ID,
		Title:         m.Title,
		DateAdded:     m.DateAdded,
		YearPublished: m.YearPublished,
		DirectorID:    m.DirectorID,
		GenreID:       m.GenreID,
		PosterURL:     m.PosterURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Director.ID != "" {
		movie.Director = ToDirectorEntity(&m.Director)
	}
	if m.Genre.ID != "" {
		movie.Genre = ToGenreEntity(&m.Genre)
	}
	if len(m.Actors) > 0 {
		movie.Actors = ToActorEntities(m.Actors)
	}
	return movie
}

func ToMovieModel(e *entity.Movie) *model.MovieModel {
	if e == nil {
		return nil
	}

	return &model.MovieModel{
		ID:            e.ID,
		Title:         e.Title,
		DateAdded:     e.DateAdded,
		YearPublished: e.YearPublished,
		DirectorID:    e.DirectorID,
		GenreID:       e.GenreID,
		PosterURL:     e.PosterURL,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToMovieEntities(models []model.MovieModel) []*entity.Movie {
	movies := make([]*entity.Movie, len(models))
	for i := range models {
		movies[i] = ToMovieEntity(&models[i])
	}
	return movies
}

func ToSeriesEntity(m *model.SeriesModel) *entity.Series {
	if m == nil {
		return nil
	}

	series := &entity.Series{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		DateAdded:     m.DateAdded,
		YearPublished: m.YearPublished,
		DirectorID:    m.DirectorID,
		GenreID:       m.GenreID,
		PosterURL:     m.PosterURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Director.ID != "" {
		series.Director = ToDirectorEntity(&m.Director)
	}
	if m.Genre.ID != "" {
		series.Genre = ToGenreEntity(&m.Genre)
	}
	if len(m.Actors) > 0 {
		series.Actors = ToActorEntities(m.Actors)
	}
	if len(m.Episodes) > 0 {
		series.Episodes = ToEpisodeEntities(m.Episodes)
	}
	return series
}

func ToSeriesModel(e *entity.Series) *model.SeriesModel {
	if e == nil {
		return nil
	}

	return &model.SeriesModel{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		DateAdded:     e.DateAdded,
		YearPublished: e.YearPublished,
		DirectorID:    e.DirectorID,
		GenreID:       e.GenreID,
		PosterURL:     e.PosterURL,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToSeriesEntities(models []model.SeriesModel) []*entity.Series {
	series := make([]*entity.Series, len(models))
	for i := range models {
		series[i] = ToSeriesEntity(&models[i])
	}
	return series
}

func ToEpisodeEntity(m *model.EpisodeModel) *entity.Episode {
	if m == nil {
		return nil
	}

	return &entity.Episode{
		ID:        m.ID,
		Name:      m.Name,
		SeriesID:  m.SeriesID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToEpisodeModel(e *entity.Episode) *model.EpisodeModel {
	if e == nil {
		return nil
	}

	return &model.EpisodeModel{
		ID:        e.ID,
		Name:      e.Name,
		SeriesID:  e.SeriesID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToEpisodeEntities(models []model.EpisodeModel) []*entity.Episode {
	episodes := make([]*entity.Episode, len(models))
	for i := range models {
		episodes[i] = ToEpisodeEntity(&models[i])
	}
	return episodes
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:               m.ID,
		Email:            m.Email,
		Username:         m.Username,
		Password:         m.Password,
		DateSubscribed:   m.DateSubscribed,
		IsActive:         m.IsActive,
		IsSuperuser:      m.IsSuperuser,
		VerificationCode: m.VerificationCode,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:               e.ID,
		Email:            e.Email,
		Username:         e.Username,
		Password:         e.Password,
		DateSubscribed:   e.DateSubscribed,
		IsActive:         e.IsActive,
		IsSuperuser:      e.IsSuperuser,
		VerificationCode: e.VerificationCode,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToUserEntities(models []model.UserModel) []*entity.User {
	users := make([]*entity.User, len(models))
	for i := range models {
		users[i] = ToUserEntity(&models[i])
	}
	return users
}

func ToSubuserEntity(m *model.SubuserModel) *entity.Subuser {
	if m == nil {
		return nil
	}

	return &entity.Subuser{
		ID:             m.ID,
		Name:           m.Name,
		DateSubscribed: m.DateSubscribed,
		UserID:         m.UserID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToSubuserModel(e *entity.Subuser) *model.SubuserModel {
	if e == nil {
		return nil
	}

	return &model.SubuserModel{
		ID:             e.ID,
		Name:           e.Name,
		DateSubscribed: e.DateSubscribed,
		UserID:         e.UserID,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToSubuserEntities(models []model.SubuserModel) []*entity.Subuser {
	subusers := make([]*entity.Subuser, len(models))
	for i := range models {
		subusers[i] = ToSubuserEntity(&models[i])
	}
	return subusers
}

func ToAdminEntity(m *model.AdminModel) *entity.Admin {
	if m == nil {
		return nil
	}

	return &entity.Admin{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Address:   m.Address,
		Country:   m.Country,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToAdminModel(e *entity.Admin) *model.AdminModel {
	if e == nil {
		return nil
	}

	return &model.AdminModel{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Address:   e.Address,
		Country:   e.Country,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToAdminEntities(models []model.AdminModel) []*entity.Admin {
	admins := make([]*entity.Admin, len(models))
	for i := range models {
		admins[i] = ToAdminEntity(&models[i])
	}
	return admins
}

func ToMovieWatchEntity(m *model.MovieWatchModel) *entity.MovieWatch {
	if m == nil {
		return nil
	}

	return &entity.MovieWatch{
		ID:          m.ID,
		UserID:      m.UserID,
		MovieID:     m.MovieID,
		Rating:      m.Rating,
		DateWatched: m.DateWatched,
	}
}

func ToMovieWatchEntities(models []model.MovieWatchModel) []*entity.MovieWatch {
	watches := make([]*entity.MovieWatch, len(models))
	for i := range models {
		watches[i] = ToMovieWatchEntity(&models[i])
	}
	return watches
}

func ToEpisodeWatchEntity(m *model.EpisodeWatchModel) *entity.EpisodeWatch {
	if m == nil {
		return nil
	}

	return &entity.EpisodeWatch{
		ID:          m.ID,
		UserID:      m.UserID,
		EpisodeID:   m.EpisodeID,
		Rating:      m.Rating,
		DateWatched: m.DateWatched,
	}
}

func ToEpisodeWatchEntities(models []model.EpisodeWatchModel) []*entity.EpisodeWatch {
	watches := make([]*entity.EpisodeWatch, len(models))
	for i := range models {
		watches[i] = ToEpisodeWatchEntity(&models[i])
	}
	return watches
}
