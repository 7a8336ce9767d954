package matching

import (
    "math"
    "sort"

    "github.com/zekkencito/CineMatch-sub000/internal/geo"
)

// RankingEngine turns a candidate pool into a scored, ordered shortlist.
// It is pure computation: all data is loaded by the caller.
type RankingEngine struct {
    defaultRadiusKm float64
    limit           int
}

func NewRankingEngine(defaultRadiusKm float64, limit int) *RankingEngine {
    return &RankingEngine{
        defaultRadiusKm: defaultRadiusKm,
        limit:           limit,
    }
}

// Rank filters and scores the pool for the requester.
//
// Candidates are dropped when they share no favorite genre with the
// requester. When the requester has coordinates, candidates without a
// location or outside the requester's search radius are dropped too. A
// requester without a location skips the distance gate entirely and
// scores no proximity points.
// Results are ordered by score descending (ties keep pool order) and
// truncated to the engine's limit.
func (e *RankingEngine) Rank(requester *CandidateProfile, requesterPrefs *PreferenceSets, pool []*CandidateProfile, prefsOf map[int64]*PreferenceSets) []*ScoredCandidate {
    radius := e.defaultRadiusKm
    if requester.RadiusKm != nil && *requester.RadiusKm > 0 {
        radius = *requester.RadiusKm
    }

    scored := make([]*ScoredCandidate, 0, len(pool))
    for _, candidate := range pool {
        prefs := prefsOf[candidate.ID]
        if prefs == nil {
            prefs = &PreferenceSets{}
        }

        var distance *float64
        if requester.HasLocation() {
            if !candidate.HasLocation() {
                continue
            }
            d := geo.DistanceKm(*requester.Latitude, *requester.Longitude, *candidate.Latitude, *candidate.Longitude)
            if d > radius {
                continue
            }
            distance = &d
        }

        genreScore, commonGenres := overlapScore(requesterPrefs.GenreIDs, prefs.GenreIDs, genreWeight)
        if commonGenres == 0 {
            continue
        }
        directorScore, commonDirectors := overlapScore(requesterPrefs.DirectorIDs, prefs.DirectorIDs, directorWeight)
        movieScore, commonMovies := overlapScore(requesterPrefs.MovieIDs, prefs.MovieIDs, movieWeight)

        total := genreScore + directorScore + movieScore
        if distance != nil {
            total += proximityScore(*distance, radius)
        }

        scored = append(scored, &ScoredCandidate{
            Profile:         candidate,
            Score:           int(math.Round(total)),
            CommonGenres:    commonGenres,
            CommonDirectors: commonDirectors,
            CommonMovies:    commonMovies,
            DistanceKm:      distance,
        })
    }

    sort.SliceStable(scored, func(i, j int) bool {
        return scored[i].Score > scored[j].Score
    })

    if e.limit > 0 && len(scored) > e.limit {
        scored = scored[:e.limit]
    }
    return scored
}
