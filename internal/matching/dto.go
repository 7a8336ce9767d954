package matching

import "math"

// LikeRequest is the swipe payload.
type LikeRequest struct {
    ToUserID int64  `json:"to_user_id" validate:"required"`
    Type     string `json:"type" validate:"required,oneof=like dislike"`
}

// SwipeResult is what a processed swipe yields: the stored interaction and
// whether it completed a mutual match.
type SwipeResult struct {
    Interaction *Interaction
    Matched     bool
    Match       *Match
}

// CandidateResponse is the wire shape for one ranked candidate.
type CandidateResponse struct {
    ID                   int64                `json:"id"`
    Name                 string               `json:"name"`
    Age                  *int                 `json:"age,omitempty"`
    Bio                  *string              `json:"bio,omitempty"`
    PhotoURL             *string              `json:"photo_url,omitempty"`
    City                 *string              `json:"city,omitempty"`
    Country              *string              `json:"country,omitempty"`
    MatchPercentage      int                  `json:"match_percentage"`
    CommonGenresCount    int                  `json:"common_genres_count"`
    CommonDirectorsCount int                  `json:"common_directors_count"`
    CommonMoviesCount    int                  `json:"common_movies_count"`
    Distance             *float64             `json:"distance,omitempty"`
    WatchedMoviesList    []*WatchedMovieEntry `json:"watched_movies_list"`
}

func toCandidateResponse(sc *ScoredCandidate) *CandidateResponse {
    resp := &CandidateResponse{
        ID:                   sc.Profile.ID,
        Name:                 sc.Profile.Name,
        Age:                  sc.Profile.Age,
        Bio:                  sc.Profile.Bio,
        PhotoURL:             sc.Profile.PhotoURL,
        City:                 sc.Profile.City,
        Country:              sc.Profile.Country,
        MatchPercentage:      sc.Score,
        CommonGenresCount:    sc.CommonGenres,
        CommonDirectorsCount: sc.CommonDirectors,
        CommonMoviesCount:    sc.CommonMovies,
        WatchedMoviesList:    sc.WatchedMovies,
    }
    if resp.WatchedMoviesList == nil {
        resp.WatchedMoviesList = []*WatchedMovieEntry{}
    }
    if sc.DistanceKm != nil {
        d := math.Round(*sc.DistanceKm*100) / 100
        resp.Distance = &d
    }
    return resp
}
