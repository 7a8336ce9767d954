// internal/preferences/service.go
// Read/write access to a user's favorite genres, directors and watched movies.
// Sync operations are full replacements (delete-all-then-reinsert); there is
// deliberately no partial-update variant.

package preferences

import (
    "context"
    "errors"
    "fmt"
    "time"

    "github.com/zekkencito/CineMatch-sub000/internal/common/utils"
    "github.com/zekkencito/CineMatch-sub000/internal/config"
)

var (
    ErrTooManyItems = errors.New("too many items in sync payload")
)

type Service interface {
    GetFavoriteGenres(ctx context.Context, userID int64) ([]*FavoriteGenre, error)
    GetFavoriteDirectors(ctx context.Context, userID int64) ([]*FavoriteDirector, error)
    GetWatchedMovies(ctx context.Context, userID int64) ([]*WatchedMovie, error)

    SyncFavoriteGenres(ctx context.Context, userID int64, req *SyncGenresRequest) ([]*FavoriteGenre, error)
    SyncFavoriteDirectors(ctx context.Context, userID int64, req *SyncDirectorsRequest) ([]*FavoriteDirector, error)
    SyncWatchedMovies(ctx context.Context, userID int64, req *SyncMoviesRequest) ([]*WatchedMovie, error)
}

type service struct {
    repo Repository
    cfg  *config.Config
}

func NewService(repo Repository, cfg *config.Config) Service {
    return &service{repo: repo, cfg: cfg}
}

func (s *service) GetFavoriteGenres(ctx context.Context, userID int64) ([]*FavoriteGenre, error) {
    return s.repo.GetFavoriteGenres(ctx, userID)
}

func (s *service) GetFavoriteDirectors(ctx context.Context, userID int64) ([]*FavoriteDirector, error) {
    return s.repo.GetFavoriteDirectors(ctx, userID)
}

func (s *service) GetWatchedMovies(ctx context.Context, userID int64) ([]*WatchedMovie, error) {
    return s.repo.GetWatchedMovies(ctx, userID)
}

func (s *service) SyncFavoriteGenres(ctx context.Context, userID int64, req *SyncGenresRequest) ([]*FavoriteGenre, error) {
    if err := utils.ValidateStruct(req); err != nil {
        return nil, err
    }
    if len(req.GenreIDs) > s.cfg.MaxSyncItems {
        return nil, ErrTooManyItems
    }

    seen := make(map[int64]bool, len(req.GenreIDs))
    genres := make([]*FavoriteGenre, 0, len(req.GenreIDs))
    for _, id := range req.GenreIDs {
        if id <= 0 {
            return nil, fmt.Errorf("genre id must be positive, got %d", id)
        }
        if seen[id] {
            continue // duplicates in the payload collapse to one row
        }
        seen[id] = true
        genres = append(genres, &FavoriteGenre{UserID: userID, GenreID: id})
    }

    if err := s.repo.ReplaceFavoriteGenres(ctx, userID, genres); err != nil {
        return nil, err
    }

    return s.repo.GetFavoriteGenres(ctx, userID)
}

func (s *service) SyncFavoriteDirectors(ctx context.Context, userID int64, req *SyncDirectorsRequest) ([]*FavoriteDirector, error) {
    if err := utils.ValidateStruct(req); err != nil {
        return nil, err
    }
    if len(req.Directors) > s.cfg.MaxSyncItems {
        return nil, ErrTooManyItems
    }

    seen := make(map[int64]bool, len(req.Directors))
    directors := make([]*FavoriteDirector, 0, len(req.Directors))
    for _, d := range req.Directors {
        if len(d.Name) > s.cfg.MaxDirectorNameLen {
            return nil, fmt.Errorf("director name exceeds %d characters", s.cfg.MaxDirectorNameLen)
        }
        if seen[d.ID] {
            continue
        }
        seen[d.ID] = true
        directors = append(directors, &FavoriteDirector{
            UserID:      userID,
            DirectorID:  d.ID,
            Name:        d.Name,
            ProfilePath: d.ProfilePath,
        })
    }

    if err := s.repo.ReplaceFavoriteDirectors(ctx, userID, directors); err != nil {
        return nil, err
    }

    return s.repo.GetFavoriteDirectors(ctx, userID)
}

func (s *service) SyncWatchedMovies(ctx context.Context, userID int64, req *SyncMoviesRequest) ([]*WatchedMovie, error) {
    if err := utils.ValidateStruct(req); err != nil {
        return nil, err
    }
    if len(req.Movies) > s.cfg.MaxSyncItems {
        return nil, ErrTooManyItems
    }

    seen := make(map[int64]bool, len(req.Movies))
    movies := make([]*WatchedMovie, 0, len(req.Movies))
    for _, m := range req.Movies {
        if len(m.Title) > s.cfg.MaxMovieTitleLen {
            return nil, fmt.Errorf("movie title exceeds %d characters", s.cfg.MaxMovieTitleLen)
        }
        if seen[m.ID] {
            continue
        }
        seen[m.ID] = true

        movie := &WatchedMovie{
            UserID:  userID,
            MovieID: m.ID,
            Title:   m.Title,
            Rating:  m.Rating,
        }
        if m.WatchedDate != nil && *m.WatchedDate != "" {
            t, err := time.Parse("2006-01-02", *m.WatchedDate)
            if err != nil {
                return nil, fmt.Errorf("watched_date must be YYYY-MM-DD: %w", err)
            }
            movie.WatchedDate = &t
        }
        movies = append(movies, movie)
    }

    if err := s.repo.ReplaceWatchedMovies(ctx, userID, movies); err != nil {
        return nil, err
    }

    return s.repo.GetWatchedMovies(ctx, userID)
}
