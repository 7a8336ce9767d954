package preferences

import (
    "context"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/zekkencito/CineMatch-sub000/internal/config"
)

type fakeRepository struct {
    genres    map[int64][]*FavoriteGenre
    directors map[int64][]*FavoriteDirector
    movies    map[int64][]*WatchedMovie
}

func newFakeRepository() *fakeRepository {
    return &fakeRepository{
        genres:    make(map[int64][]*FavoriteGenre),
        directors: make(map[int64][]*FavoriteDirector),
        movies:    make(map[int64][]*WatchedMovie),
    }
}

func (f *fakeRepository) GetFavoriteGenres(_ context.Context, userID int64) ([]*FavoriteGenre, error) {
    return f.genres[userID], nil
}

func (f *fakeRepository) GetFavoriteDirectors(_ context.Context, userID int64) ([]*FavoriteDirector, error) {
    return f.directors[userID], nil
}

func (f *fakeRepository) GetWatchedMovies(_ context.Context, userID int64) ([]*WatchedMovie, error) {
    return f.movies[userID], nil
}

func (f *fakeRepository) ReplaceFavoriteGenres(_ context.Context, userID int64, genres []*FavoriteGenre) error {
    f.genres[userID] = genres
    return nil
}

func (f *fakeRepository) ReplaceFavoriteDirectors(_ context.Context, userID int64, directors []*FavoriteDirector) error {
    f.directors[userID] = directors
    return nil
}

func (f *fakeRepository) ReplaceWatchedMovies(_ context.Context, userID int64, movies []*WatchedMovie) error {
    f.movies[userID] = movies
    return nil
}

func newTestService(repo Repository) Service {
    cfg := &config.Config{
        MaxSyncItems:       500,
        MaxDirectorNameLen: 150,
        MaxMovieTitleLen:   200,
    }
    return NewService(repo, cfg)
}

func TestSyncFavoriteGenresReplacesSet(t *testing.T) {
    repo := newFakeRepository()
    svc := newTestService(repo)
    ctx := context.Background()

    genres, err := svc.SyncFavoriteGenres(ctx, 1, &SyncGenresRequest{GenreIDs: []int64{878, 28}})
    require.NoError(t, err)
    assert.Len(t, genres, 2)

    // a second sync fully replaces the first
    genres, err = svc.SyncFavoriteGenres(ctx, 1, &SyncGenresRequest{GenreIDs: []int64{35}})
    require.NoError(t, err)
    require.Len(t, genres, 1)
    assert.Equal(t, int64(35), genres[0].GenreID)
}

func TestSyncFavoriteGenresEmptyListClears(t *testing.T) {
    repo := newFakeRepository()
    svc := newTestService(repo)
    ctx := context.Background()

    _, err := svc.SyncFavoriteGenres(ctx, 1, &SyncGenresRequest{GenreIDs: []int64{878}})
    require.NoError(t, err)

    genres, err := svc.SyncFavoriteGenres(ctx, 1, &SyncGenresRequest{GenreIDs: []int64{}})
    require.NoError(t, err)
    assert.Empty(t, genres)
}

func TestSyncFavoriteGenresDuplicatesCollapse(t *testing.T) {
    repo := newFakeRepository()
    svc := newTestService(repo)

    genres, err := svc.SyncFavoriteGenres(context.Background(), 1,
        &SyncGenresRequest{GenreIDs: []int64{878, 878, 878}})
    require.NoError(t, err)
    assert.Len(t, genres, 1)
}

func TestSyncFavoriteGenresRejectsNonPositiveIDs(t *testing.T) {
    repo := newFakeRepository()
    svc := newTestService(repo)

    _, err := svc.SyncFavoriteGenres(context.Background(), 1,
        &SyncGenresRequest{GenreIDs: []int64{878, -5}})
    assert.Error(t, err)
}

func TestSyncFavoriteGenresTooManyItems(t *testing.T) {
    repo := newFakeRepository()
    svc := newTestService(repo)

    ids := make([]int64, 501)
    for i := range ids {
        ids[i] = int64(i + 1)
    }
    _, err := svc.SyncFavoriteGenres(context.Background(), 1, &SyncGenresRequest{GenreIDs: ids})
    assert.ErrorIs(t, err, ErrTooManyItems)
}

func TestSyncFavoriteDirectorsValidation(t *testing.T) {
    repo := newFakeRepository()
    svc := newTestService(repo)
    ctx := context.Background()

    // missing name fails struct validation
    _, err := svc.SyncFavoriteDirectors(ctx, 1, &SyncDirectorsRequest{
        Directors: []DirectorInput{{ID: 138}},
    })
    assert.Error(t, err)

    directors, err := svc.SyncFavoriteDirectors(ctx, 1, &SyncDirectorsRequest{
        Directors: []DirectorInput{{ID: 138, Name: "Quentin Tarantino"}},
    })
    require.NoError(t, err)
    require.Len(t, directors, 1)
    assert.Equal(t, "Quentin Tarantino", directors[0].Name)
}

func TestSyncWatchedMoviesValidation(t *testing.T) {
    repo := newFakeRepository()
    svc := newTestService(repo)
    ctx := context.Background()

    // rating outside 1-5
    bad := 9
    _, err := svc.SyncWatchedMovies(ctx, 1, &SyncMoviesRequest{
        Movies: []MovieInput{{ID: 27205, Title: "Inception", Rating: &bad}},
    })
    assert.Error(t, err)

    // malformed watched_date
    badDate := "12/07/2010"
    _, err = svc.SyncWatchedMovies(ctx, 1, &SyncMoviesRequest{
        Movies: []MovieInput{{ID: 27205, Title: "Inception", WatchedDate: &badDate}},
    })
    assert.Error(t, err)

    // valid payload round-trips
    rating := 5
    date := "2010-07-16"
    movies, err := svc.SyncWatchedMovies(ctx, 1, &SyncMoviesRequest{
        Movies: []MovieInput{{ID: 27205, Title: "Inception", Rating: &rating, WatchedDate: &date}},
    })
    require.NoError(t, err)
    require.Len(t, movies, 1)
    require.NotNil(t, movies[0].WatchedDate)
    assert.Equal(t, 2010, movies[0].WatchedDate.Year())
}

func TestSyncWatchedMoviesTitleTooLong(t *testing.T) {
    repo := newFakeRepository()
    svc := newTestService(repo)

    _, err := svc.SyncWatchedMovies(context.Background(), 1, &SyncMoviesRequest{
        Movies: []MovieInput{{ID: 1, Title: strings.Repeat("x", 201)}},
    })
    assert.Error(t, err)
}
