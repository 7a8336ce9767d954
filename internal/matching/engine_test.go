package matching

import (
    "fmt"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func newTestEngine() *RankingEngine {
    return NewRankingEngine(50, 20)
}

func profileAt(id int64, lat, lng float64) *CandidateProfile {
    return &CandidateProfile{
        ID:        id,
        Name:      fmt.Sprintf("user-%d", id),
        Latitude:  &lat,
        Longitude: &lng,
    }
}

func profileNowhere(id int64) *CandidateProfile {
    return &CandidateProfile{ID: id, Name: fmt.Sprintf("user-%d", id)}
}

func TestRankScoreScenario(t *testing.T) {
    // A at (30.4336,-107.9063) radius 7km; B ~1.1km due north.
    // Shared genre {878} of two each -> 20, shared director {138} -> 30,
    // no shared movies, proximity ~8.4 -> total ~58.
    requester := profileAt(1, 30.4336, -107.9063)
    radius := 7.0
    requester.RadiusKm = &radius

    candidate := profileAt(2, 30.4436, -107.9063)

    requesterPrefs := &PreferenceSets{
        GenreIDs:    []int64{878, 28},
        DirectorIDs: []int64{138},
        MovieIDs:    []int64{24},
    }
    prefsOf := map[int64]*PreferenceSets{
        2: {
            GenreIDs:    []int64{878, 10749},
            DirectorIDs: []int64{138},
            MovieIDs:    []int64{},
        },
    }

    ranked := newTestEngine().Rank(requester, requesterPrefs, []*CandidateProfile{candidate}, prefsOf)
    require.Len(t, ranked, 1)

    sc := ranked[0]
    assert.Equal(t, int64(2), sc.Profile.ID)
    require.NotNil(t, sc.DistanceKm)
    assert.InDelta(t, 1.11, *sc.DistanceKm, 0.02)
    assert.GreaterOrEqual(t, sc.Score, 55)
    assert.LessOrEqual(t, sc.Score, 61)
    assert.Equal(t, 1, sc.CommonGenres)
    assert.Equal(t, 1, sc.CommonDirectors)
    assert.Equal(t, 0, sc.CommonMovies)
}

func TestRankScoreBounds(t *testing.T) {
    requester := profileAt(1, 51.5, -0.12)
    candidate := profileAt(2, 51.5, -0.12)

    same := &PreferenceSets{
        GenreIDs:    []int64{1, 2, 3},
        DirectorIDs: []int64{10, 11},
        MovieIDs:    []int64{100},
    }

    ranked := newTestEngine().Rank(requester, same,
        []*CandidateProfile{candidate}, map[int64]*PreferenceSets{2: same})
    require.Len(t, ranked, 1)

    // identical tastes at zero distance is the maximum score
    assert.Equal(t, 100, ranked[0].Score)
}

func TestRankGenreGate(t *testing.T) {
    requester := profileNowhere(1)
    requesterPrefs := &PreferenceSets{GenreIDs: []int64{878}}

    pool := []*CandidateProfile{profileNowhere(2), profileNowhere(3)}
    prefsOf := map[int64]*PreferenceSets{
        2: {GenreIDs: []int64{878}, DirectorIDs: []int64{1}},
        3: {GenreIDs: []int64{35}, DirectorIDs: []int64{1}}, // no shared genre
    }

    ranked := newTestEngine().Rank(requester, requesterPrefs, pool, prefsOf)
    require.Len(t, ranked, 1)
    assert.Equal(t, int64(2), ranked[0].Profile.ID)
}

func TestRankEmptyGenresExcludesEveryone(t *testing.T) {
    requester := profileNowhere(1)

    pool := []*CandidateProfile{profileNowhere(2)}
    prefsOf := map[int64]*PreferenceSets{2: {GenreIDs: []int64{878}}}

    ranked := newTestEngine().Rank(requester, &PreferenceSets{}, pool, prefsOf)
    assert.Empty(t, ranked)
}

func TestRankDistanceGate(t *testing.T) {
    requester := profileAt(1, 51.5074, -0.1278) // London
    radius := 100.0
    requester.RadiusKm = &radius

    near := profileAt(2, 51.4816, -0.1910)  // a few km away
    far := profileAt(3, 48.8566, 2.3522)    // Paris, ~343km
    nowhere := profileNowhere(4)            // no coordinates

    shared := &PreferenceSets{GenreIDs: []int64{878}}
    prefsOf := map[int64]*PreferenceSets{2: shared, 3: shared, 4: shared}

    ranked := newTestEngine().Rank(requester, shared,
        []*CandidateProfile{near, far, nowhere}, prefsOf)

    // far is outside the radius; nowhere has no coordinates to gate on
    require.Len(t, ranked, 1)
    assert.Equal(t, int64(2), ranked[0].Profile.ID)
    require.NotNil(t, ranked[0].DistanceKm)
}

func TestRankNoRequesterLocationSkipsDistanceGate(t *testing.T) {
    requester := profileNowhere(1)
    far := profileAt(2, -33.8688, 151.2093) // Sydney

    shared := &PreferenceSets{GenreIDs: []int64{878}}

    ranked := newTestEngine().Rank(requester, shared,
        []*CandidateProfile{far}, map[int64]*PreferenceSets{2: shared})
    require.Len(t, ranked, 1)
    assert.Nil(t, ranked[0].DistanceKm)
    // genre component alone: full overlap of singleton sets
    assert.Equal(t, 40, ranked[0].Score)
}

func TestRankSortedDescendingAndTruncated(t *testing.T) {
    requester := profileNowhere(1)
    requesterPrefs := &PreferenceSets{
        GenreIDs:    []int64{1, 2, 3, 4},
        DirectorIDs: []int64{10},
    }

    var pool []*CandidateProfile
    prefsOf := make(map[int64]*PreferenceSets)
    for i := int64(2); i <= 31; i++ {
        pool = append(pool, profileNowhere(i))
        // higher ids share more genres, so they should rank first
        n := int((i % 4) + 1)
        prefsOf[i] = &PreferenceSets{GenreIDs: requesterPrefs.GenreIDs[:n]}
    }

    ranked := newTestEngine().Rank(requester, requesterPrefs, pool, prefsOf)
    require.Len(t, ranked, 20)

    for i := 1; i < len(ranked); i++ {
        assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
    }
}

func TestRankCandidateRadiusIgnored(t *testing.T) {
    // Only the requester's radius gates candidates; the candidate's own
    // radius setting plays no part.
    requester := profileAt(1, 51.5074, -0.1278)
    radius := 500.0
    requester.RadiusKm = &radius

    candidate := profileAt(2, 48.8566, 2.3522) // Paris
    tiny := 1.0
    candidate.RadiusKm = &tiny

    shared := &PreferenceSets{GenreIDs: []int64{878}}
    ranked := newTestEngine().Rank(requester, shared,
        []*CandidateProfile{candidate}, map[int64]*PreferenceSets{2: shared})
    assert.Len(t, ranked, 1)
}

func TestRankDefaultRadiusFallback(t *testing.T) {
    // zero or missing radius falls back to the engine default
    requester := profileAt(1, 51.5074, -0.1278)
    zero := 0.0
    requester.RadiusKm = &zero

    near := profileAt(2, 51.5155, -0.1410) // ~1.3km
    shared := &PreferenceSets{GenreIDs: []int64{878}}

    ranked := NewRankingEngine(50, 20).Rank(requester, shared,
        []*CandidateProfile{near}, map[int64]*PreferenceSets{2: shared})
    assert.Len(t, ranked, 1)
}
