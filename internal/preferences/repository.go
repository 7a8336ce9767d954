package preferences

import (
    "context"

    "github.com/jmoiron/sqlx"
)

type Repository interface {
    GetFavoriteGenres(ctx context.Context, userID int64) ([]*FavoriteGenre, error)
    GetFavoriteDirectors(ctx context.Context, userID int64) ([]*FavoriteDirector, error)
    GetWatchedMovies(ctx context.Context, userID int64) ([]*WatchedMovie, error)

    // Replace* implement the non-incremental sync: delete every row for the
    // user in the category, then bulk-insert the new set, in one transaction.
    ReplaceFavoriteGenres(ctx context.Context, userID int64, genres []*FavoriteGenre) error
    ReplaceFavoriteDirectors(ctx context.Context, userID int64, directors []*FavoriteDirector) error
    ReplaceWatchedMovies(ctx context.Context, userID int64, movies []*WatchedMovie) error
}

type postgresRepository struct {
    db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
    return &postgresRepository{db: db}
}

func (r *postgresRepository) GetFavoriteGenres(ctx context.Context, userID int64) ([]*FavoriteGenre, error) {
    var genres []*FavoriteGenre
    query := `SELECT * FROM favorite_genres WHERE user_id = $1 ORDER BY genre_id`

    err := r.db.SelectContext(ctx, &genres, query, userID)
    return genres, err
}

func (r *postgresRepository) GetFavoriteDirectors(ctx context.Context, userID int64) ([]*FavoriteDirector, error) {
    var directors []*FavoriteDirector
    query := `SELECT * FROM favorite_directors WHERE user_id = $1 ORDER BY director_id`

    err := r.db.SelectContext(ctx, &directors, query, userID)
    return directors, err
}

func (r *postgresRepository) GetWatchedMovies(ctx context.Context, userID int64) ([]*WatchedMovie, error) {
    var movies []*WatchedMovie
    query := `SELECT * FROM watched_movies WHERE user_id = $1 ORDER BY movie_id`

    err := r.db.SelectContext(ctx, &movies, query, userID)
    return movies, err
}

func (r *postgresRepository) ReplaceFavoriteGenres(ctx context.Context, userID int64, genres []*FavoriteGenre) error {
    tx, err := r.db.BeginTxx(ctx, nil)
    if err != nil {
        return err
    }
    defer tx.Rollback()

    if _, err := tx.ExecContext(ctx, `DELETE FROM favorite_genres WHERE user_id = $1`, userID); err != nil {
        return err
    }

    for _, g := range genres {
        _, err := tx.ExecContext(ctx,
            `INSERT INTO favorite_genres (user_id, genre_id) VALUES ($1, $2)`,
            userID, g.GenreID,
        )
        if err != nil {
            return err
        }
    }

    return tx.Commit()
}

func (r *postgresRepository) ReplaceFavoriteDirectors(ctx context.Context, userID int64, directors []*FavoriteDirector) error {
    tx, err := r.db.BeginTxx(ctx, nil)
    if err != nil {
        return err
    }
    defer tx.Rollback()

    if _, err := tx.ExecContext(ctx, `DELETE FROM favorite_directors WHERE user_id = $1`, userID); err != nil {
        return err
    }

    for _, d := range directors {
        _, err := tx.ExecContext(ctx,
            `INSERT INTO favorite_directors (user_id, director_id, name, profile_path)
             VALUES ($1, $2, $3, $4)`,
            userID, d.DirectorID, d.Name, d.ProfilePath,
        )
        if err != nil {
            return err
        }
    }

    return tx.Commit()
}

func (r *postgresRepository) ReplaceWatchedMovies(ctx context.Context, userID int64, movies []*WatchedMovie) error {
    tx, err := r.db.BeginTxx(ctx, nil)
    if err != nil {
        return err
    }
    defer tx.Rollback()

    if _, err := tx.ExecContext(ctx, `DELETE FROM watched_movies WHERE user_id = $1`, userID); err != nil {
        return err
    }

    for _, m := range movies {
        _, err := tx.ExecContext(ctx,
            `INSERT INTO watched_movies (user_id, movie_id, title, rating, watched_date)
             VALUES ($1, $2, $3, $4, $5)`,
            userID, m.MovieID, m.Title, m.Rating, m.WatchedDate,
        )
        if err != nil {
            return err
        }
    }

    return tx.Commit()
}
