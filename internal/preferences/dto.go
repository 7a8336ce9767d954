// internal/preferences/dto.go
package preferences

// DTOs for API requests/responses
// Sync payloads are full replacements: the stored set becomes exactly what
// the client sent, so an empty list clears the category.

type SyncGenresRequest struct {
    GenreIDs []int64 `json:"genre_ids" validate:"required"`
}

type DirectorInput struct {
    ID          int64   `json:"id" validate:"required"`
    Name        string  `json:"name" validate:"required,max=150"`
    ProfilePath *string `json:"profile_path,omitempty" validate:"omitempty,max=300"`
}

type SyncDirectorsRequest struct {
    Directors []DirectorInput `json:"directors" validate:"required,dive"`
}

type MovieInput struct {
    ID          int64   `json:"id" validate:"required"`
    Title       string  `json:"title" validate:"required,max=200"`
    Rating      *int    `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
    WatchedDate *string `json:"watched_date,omitempty"` // YYYY-MM-DD
}

type SyncMoviesRequest struct {
    Movies []MovieInput `json:"movies" validate:"required,dive"`
}
