package matching

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/zekkencito/CineMatch-sub000/internal/config"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
    profiles     map[int64]*CandidateProfile
    prefs        map[int64]*PreferenceSets
    movies       map[int64][]*WatchedMovieEntry
    interactions map[[2]int64]*Interaction
    matches      map[[2]int64]*Match
    nextID       int64
}

func newFakeRepository() *fakeRepository {
    return &fakeRepository{
        profiles:     make(map[int64]*CandidateProfile),
        prefs:        make(map[int64]*PreferenceSets),
        movies:       make(map[int64][]*WatchedMovieEntry),
        interactions: make(map[[2]int64]*Interaction),
        matches:      make(map[[2]int64]*Match),
    }
}

func (f *fakeRepository) addUser(id int64, prefs *PreferenceSets) {
    f.profiles[id] = profileNowhere(id)
    if prefs == nil {
        prefs = &PreferenceSets{}
    }
    f.prefs[id] = prefs
}

func (f *fakeRepository) UpsertInteraction(_ context.Context, from, to int64, kind string) (*Interaction, error) {
    key := [2]int64{from, to}
    if existing, ok := f.interactions[key]; ok {
        existing.Kind = kind
        existing.UpdatedAt = time.Now()
        return existing, nil
    }
    f.nextID++
    now := time.Now()
    interaction := &Interaction{
        ID: f.nextID, FromUserID: from, ToUserID: to, Kind: kind,
        CreatedAt: now, UpdatedAt: now,
    }
    f.interactions[key] = interaction
    return interaction, nil
}

func (f *fakeRepository) GetSeenUserIDs(_ context.Context, userID int64) ([]int64, error) {
    var ids []int64
    for key := range f.interactions {
        if key[0] == userID {
            ids = append(ids, key[1])
        }
    }
    return ids, nil
}

func (f *fakeRepository) HasLiked(_ context.Context, from, to int64) (bool, error) {
    i, ok := f.interactions[[2]int64{from, to}]
    return ok && i.Kind == KindLike, nil
}

func (f *fakeRepository) CreateMatchIfAbsent(_ context.Context, a, b int64) (*Match, bool, error) {
    u1, u2 := orderPair(a, b)
    key := [2]int64{u1, u2}
    if existing, ok := f.matches[key]; ok {
        return existing, false, nil
    }
    f.nextID++
    match := &Match{ID: f.nextID, User1ID: u1, User2ID: u2, MatchedAt: time.Now()}
    f.matches[key] = match
    return match, true, nil
}

func (f *fakeRepository) MatchExists(_ context.Context, a, b int64) (bool, error) {
    u1, u2 := orderPair(a, b)
    _, ok := f.matches[[2]int64{u1, u2}]
    return ok, nil
}

func (f *fakeRepository) GetUserMatches(_ context.Context, userID int64) ([]*Match, error) {
    var matches []*Match
    for _, m := range f.matches {
        if m.User1ID == userID || m.User2ID == userID {
            matches = append(matches, m)
        }
    }
    return matches, nil
}

func (f *fakeRepository) UserExists(_ context.Context, userID int64) (bool, error) {
    _, ok := f.profiles[userID]
    return ok, nil
}

func (f *fakeRepository) GetCandidateProfile(_ context.Context, userID int64) (*CandidateProfile, error) {
    p, ok := f.profiles[userID]
    if !ok {
        return nil, ErrUserNotFound
    }
    return p, nil
}

func (f *fakeRepository) ListCandidateProfiles(_ context.Context, excludeUserID int64, excludeIDs []int64) ([]*CandidateProfile, error) {
    excluded := map[int64]bool{excludeUserID: true}
    for _, id := range excludeIDs {
        excluded[id] = true
    }
    var pool []*CandidateProfile
    for id, p := range f.profiles {
        if !excluded[id] {
            pool = append(pool, p)
        }
    }
    return pool, nil
}

func (f *fakeRepository) GetPreferenceSets(_ context.Context, userID int64) (*PreferenceSets, error) {
    if p, ok := f.prefs[userID]; ok {
        return p, nil
    }
    return &PreferenceSets{}, nil
}

func (f *fakeRepository) GetPreferenceSetsForUsers(_ context.Context, userIDs []int64) (map[int64]*PreferenceSets, error) {
    result := make(map[int64]*PreferenceSets)
    for _, id := range userIDs {
        if p, ok := f.prefs[id]; ok {
            result[id] = p
        } else {
            result[id] = &PreferenceSets{}
        }
    }
    return result, nil
}

func (f *fakeRepository) GetWatchedMovieListsForUsers(_ context.Context, userIDs []int64) (map[int64][]*WatchedMovieEntry, error) {
    result := make(map[int64][]*WatchedMovieEntry)
    for _, id := range userIDs {
        result[id] = f.movies[id]
    }
    return result, nil
}

func newTestService(repo Repository) Service {
    cfg := &config.Config{DefaultSearchRadiusKm: 50, MaxCandidates: 20}
    return NewService(repo, cfg)
}

func TestProcessSwipeSelf(t *testing.T) {
    repo := newFakeRepository()
    repo.addUser(1, nil)
    svc := newTestService(repo)

    _, err := svc.ProcessSwipe(context.Background(), 1, 1, KindLike)
    assert.ErrorIs(t, err, ErrSelfInteraction)
    assert.Empty(t, repo.interactions)
}

func TestProcessSwipeInvalidKind(t *testing.T) {
    repo := newFakeRepository()
    repo.addUser(1, nil)
    repo.addUser(2, nil)
    svc := newTestService(repo)

    _, err := svc.ProcessSwipe(context.Background(), 1, 2, "superlike")
    assert.ErrorIs(t, err, ErrInvalidSwipeKind)
}

func TestProcessSwipeUnknownTarget(t *testing.T) {
    repo := newFakeRepository()
    repo.addUser(1, nil)
    svc := newTestService(repo)

    _, err := svc.ProcessSwipe(context.Background(), 1, 99, KindLike)
    assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProcessSwipeLikeWithoutReciprocity(t *testing.T) {
    repo := newFakeRepository()
    repo.addUser(1, nil)
    repo.addUser(2, nil)
    svc := newTestService(repo)

    result, err := svc.ProcessSwipe(context.Background(), 1, 2, KindLike)
    require.NoError(t, err)
    assert.False(t, result.Matched)
    assert.Nil(t, result.Match)
    assert.Equal(t, KindLike, result.Interaction.Kind)
}

func TestProcessSwipeReciprocalLikeMatches(t *testing.T) {
    repo := newFakeRepository()
    repo.addUser(1, nil)
    repo.addUser(2, nil)
    svc := newTestService(repo)

    _, err := svc.ProcessSwipe(context.Background(), 1, 2, KindLike)
    require.NoError(t, err)

    result, err := svc.ProcessSwipe(context.Background(), 2, 1, KindLike)
    require.NoError(t, err)
    assert.True(t, result.Matched)
    require.NotNil(t, result.Match)
    assert.Equal(t, int64(1), result.Match.User1ID)
    assert.Equal(t, int64(2), result.Match.User2ID)
    assert.Len(t, repo.matches, 1)
}

func TestProcessSwipeRepeatedReciprocalLikeIsIdempotent(t *testing.T) {
    repo := newFakeRepository()
    repo.addUser(1, nil)
    repo.addUser(2, nil)
    svc := newTestService(repo)

    _, err := svc.ProcessSwipe(context.Background(), 1, 2, KindLike)
    require.NoError(t, err)
    first, err := svc.ProcessSwipe(context.Background(), 2, 1, KindLike)
    require.NoError(t, err)

    // liking again still reports matched with the same match row
    second, err := svc.ProcessSwipe(context.Background(), 2, 1, KindLike)
    require.NoError(t, err)
    assert.True(t, second.Matched)
    assert.Equal(t, first.Match.ID, second.Match.ID)
    assert.Len(t, repo.matches, 1)
}

func TestProcessSwipeDislikeNeverMatches(t *testing.T) {
    repo := newFakeRepository()
    repo.addUser(1, nil)
    repo.addUser(2, nil)
    svc := newTestService(repo)

    _, err := svc.ProcessSwipe(context.Background(), 1, 2, KindLike)
    require.NoError(t, err)

    result, err := svc.ProcessSwipe(context.Background(), 2, 1, KindDislike)
    require.NoError(t, err)
    assert.False(t, result.Matched)
    assert.Empty(t, repo.matches)
}

func TestProcessSwipeUpsertOverwritesKind(t *testing.T) {
    repo := newFakeRepository()
    repo.addUser(1, nil)
    repo.addUser(2, nil)
    svc := newTestService(repo)

    first, err := svc.ProcessSwipe(context.Background(), 1, 2, KindDislike)
    require.NoError(t, err)

    second, err := svc.ProcessSwipe(context.Background(), 1, 2, KindLike)
    require.NoError(t, err)
    assert.Equal(t, first.Interaction.ID, second.Interaction.ID)
    assert.Equal(t, KindLike, second.Interaction.Kind)
    assert.Len(t, repo.interactions, 1)
}

func TestGetCandidatesExcludesSeen(t *testing.T) {
    repo := newFakeRepository()
    shared := &PreferenceSets{GenreIDs: []int64{878}}
    repo.addUser(1, shared)
    repo.addUser(2, shared)
    repo.addUser(3, shared)
    svc := newTestService(repo)

    ranked, err := svc.GetCandidates(context.Background(), 1)
    require.NoError(t, err)
    assert.Len(t, ranked, 2)

    _, err = svc.ProcessSwipe(context.Background(), 1, 2, KindDislike)
    require.NoError(t, err)

    ranked, err = svc.GetCandidates(context.Background(), 1)
    require.NoError(t, err)
    require.Len(t, ranked, 1)
    assert.Equal(t, int64(3), ranked[0].Profile.ID)
}

func TestGetCandidatesUnknownRequester(t *testing.T) {
    repo := newFakeRepository()
    svc := newTestService(repo)

    _, err := svc.GetCandidates(context.Background(), 42)
    assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetCandidatesAttachesWatchedMovies(t *testing.T) {
    repo := newFakeRepository()
    shared := &PreferenceSets{GenreIDs: []int64{878}}
    repo.addUser(1, shared)
    repo.addUser(2, shared)
    repo.movies[2] = []*WatchedMovieEntry{{MovieID: 27205, Title: "Inception"}}
    svc := newTestService(repo)

    ranked, err := svc.GetCandidates(context.Background(), 1)
    require.NoError(t, err)
    require.Len(t, ranked, 1)
    require.Len(t, ranked[0].WatchedMovies, 1)
    assert.Equal(t, "Inception", ranked[0].WatchedMovies[0].Title)
}
