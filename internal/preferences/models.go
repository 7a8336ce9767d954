package preferences

import "time"

// All three preference kinds store external catalog identifiers supplied by
// the client; names/titles are denormalized copies cached at insert time and
// never validated against the catalog service here.

type FavoriteGenre struct {
    ID        int64     `json:"id" db:"id"`
    UserID    int64     `json:"user_id" db:"user_id"`
    GenreID   int64     `json:"genre_id" db:"genre_id"`
    CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type FavoriteDirector struct {
    ID          int64     `json:"id" db:"id"`
    UserID      int64     `json:"user_id" db:"user_id"`
    DirectorID  int64     `json:"director_id" db:"director_id"`
    Name        string    `json:"name" db:"name"`
    ProfilePath *string   `json:"profile_path,omitempty" db:"profile_path"`
    CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type WatchedMovie struct {
    ID          int64      `json:"id" db:"id"`
    UserID      int64      `json:"user_id" db:"user_id"`
    MovieID     int64      `json:"movie_id" db:"movie_id"`
    Title       string     `json:"title" db:"title"`
    Rating      *int       `json:"rating,omitempty" db:"rating"`
    WatchedDate *time.Time `json:"watched_date,omitempty" db:"watched_date"`
    CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}
