package matching

import "time"

// Interaction kinds
const (
    KindLike    = "like"
    KindDislike = "dislike"
)

// Interaction is a directed swipe from one user toward another. At most one
// row exists per ordered (from, to) pair; a later swipe overwrites the kind.
type Interaction struct {
    ID         int64     `json:"id" db:"id"`
    FromUserID int64     `json:"from_user_id" db:"from_user_id"`
    ToUserID   int64     `json:"to_user_id" db:"to_user_id"`
    Kind       string    `json:"type" db:"kind"`
    CreatedAt  time.Time `json:"created_at" db:"created_at"`
    UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Match is a confirmed mutual like. User1ID < User2ID always, so each
// unordered pair has at most one row regardless of which like landed last.
type Match struct {
    ID        int64     `json:"id" db:"id"`
    User1ID   int64     `json:"user1_id" db:"user1_id"`
    User2ID   int64     `json:"user2_id" db:"user2_id"`
    MatchedAt time.Time `json:"matched_at" db:"matched_at"`

    // Joined fields
    MatchedUser *UserInfo `json:"matched_user,omitempty"`
}

// UserInfo is the embedded profile summary returned with matches.
type UserInfo struct {
    ID       int64   `json:"id" db:"id"`
    Name     string  `json:"name" db:"name"`
    Age      *int    `json:"age,omitempty" db:"age"`
    Bio      *string `json:"bio,omitempty" db:"bio"`
    PhotoURL *string `json:"photo_url,omitempty" db:"photo_url"`
}

// CandidateProfile is the ranking engine's read model: a user row joined
// with their (optional) location.
type CandidateProfile struct {
    ID       int64   `json:"id" db:"id"`
    Name     string  `json:"name" db:"name"`
    Age      *int    `json:"age,omitempty" db:"age"`
    Bio      *string `json:"bio,omitempty" db:"bio"`
    PhotoURL *string `json:"photo_url,omitempty" db:"photo_url"`

    // Location columns are NULL when the user never set a position
    Latitude  *float64 `json:"latitude,omitempty" db:"latitude"`
    Longitude *float64 `json:"longitude,omitempty" db:"longitude"`
    City      *string  `json:"city,omitempty" db:"city"`
    Country   *string  `json:"country,omitempty" db:"country"`
    RadiusKm  *float64 `json:"radius_km,omitempty" db:"radius_km"`
}

// HasLocation reports whether the user has coordinates on record.
func (p *CandidateProfile) HasLocation() bool {
    return p != nil && p.Latitude != nil && p.Longitude != nil
}

// PreferenceSets holds one user's external catalog id sets.
type PreferenceSets struct {
    GenreIDs    []int64
    DirectorIDs []int64
    MovieIDs    []int64
}

// WatchedMovieEntry is the denormalized watched-movie summary embedded in
// candidate payloads.
type WatchedMovieEntry struct {
    MovieID int64  `json:"id" db:"movie_id"`
    Title   string `json:"title" db:"title"`
    Rating  *int   `json:"rating,omitempty" db:"rating"`
}

// ScoredCandidate is one ranked result: the candidate plus the composite
// score and its component overlap counts.
type ScoredCandidate struct {
    Profile         *CandidateProfile
    Score           int // 0-100
    CommonGenres    int
    CommonDirectors int
    CommonMovies    int
    DistanceKm      *float64 // nil when the requester has no location
    WatchedMovies   []*WatchedMovieEntry
}
