package matching

import (
    "context"
    "errors"

    "github.com/zekkencito/CineMatch-sub000/internal/config"
)

var (
    ErrSelfInteraction  = errors.New("cannot swipe on yourself")
    ErrInvalidSwipeKind = errors.New("swipe type must be 'like' or 'dislike'")
    ErrUserNotFound     = errors.New("user not found")
)

// Service exposes candidate discovery and the swipe/match lifecycle.
type Service interface {
    GetCandidates(ctx context.Context, userID int64) ([]*ScoredCandidate, error)
    ProcessSwipe(ctx context.Context, fromUserID, toUserID int64, kind string) (*SwipeResult, error)
    GetMatches(ctx context.Context, userID int64) ([]*Match, error)
    IsMatched(ctx context.Context, userA, userB int64) (bool, error)
}

type service struct {
    repo   Repository
    engine *RankingEngine
}

func NewService(repo Repository, cfg *config.Config) Service {
    return &service{
        repo:   repo,
        engine: NewRankingEngine(cfg.DefaultSearchRadiusKm, cfg.MaxCandidates),
    }
}

// GetCandidates loads the requester, everyone they have not swiped on yet,
// and all preference sets, then ranks the pool.
func (s *service) GetCandidates(ctx context.Context, userID int64) ([]*ScoredCandidate, error) {
    requester, err := s.repo.GetCandidateProfile(ctx, userID)
    if err != nil {
        return nil, err
    }

    requesterPrefs, err := s.repo.GetPreferenceSets(ctx, userID)
    if err != nil {
        return nil, err
    }

    seen, err := s.repo.GetSeenUserIDs(ctx, userID)
    if err != nil {
        return nil, err
    }

    pool, err := s.repo.ListCandidateProfiles(ctx, userID, seen)
    if err != nil {
        return nil, err
    }

    poolIDs := make([]int64, len(pool))
    for i, p := range pool {
        poolIDs[i] = p.ID
    }
    prefsOf, err := s.repo.GetPreferenceSetsForUsers(ctx, poolIDs)
    if err != nil {
        return nil, err
    }

    ranked := s.engine.Rank(requester, requesterPrefs, pool, prefsOf)

    // Attach watched-movie lists for the shortlist only
    if len(ranked) > 0 {
        ids := make([]int64, len(ranked))
        for i, sc := range ranked {
            ids[i] = sc.Profile.ID
        }
        movieLists, err := s.repo.GetWatchedMovieListsForUsers(ctx, ids)
        if err != nil {
            return nil, err
        }
        for _, sc := range ranked {
            sc.WatchedMovies = movieLists[sc.Profile.ID]
        }
    }

    RecordCandidateList(len(ranked))
    for _, sc := range ranked {
        RecordScore(sc.Score)
    }
    return ranked, nil
}

// ProcessSwipe records the interaction, then checks for reciprocity. The
// interaction is stored before the reciprocal lookup so a concurrent swipe
// from the other side always observes it or creates the match itself; the
// unique pair constraint on matches keeps the result to a single row.
func (s *service) ProcessSwipe(ctx context.Context, fromUserID, toUserID int64, kind string) (*SwipeResult, error) {
    if fromUserID == toUserID {
        return nil, ErrSelfInteraction
    }
    if kind != KindLike && kind != KindDislike {
        return nil, ErrInvalidSwipeKind
    }

    exists, err := s.repo.UserExists(ctx, toUserID)
    if err != nil {
        return nil, err
    }
    if !exists {
        return nil, ErrUserNotFound
    }

    interaction, err := s.repo.UpsertInteraction(ctx, fromUserID, toUserID, kind)
    if err != nil {
        return nil, err
    }
    RecordSwipe(kind)

    result := &SwipeResult{Interaction: interaction}
    if kind != KindLike {
        return result, nil
    }

    reciprocal, err := s.repo.HasLiked(ctx, toUserID, fromUserID)
    if err != nil {
        return nil, err
    }
    if !reciprocal {
        return result, nil
    }

    match, created, err := s.repo.CreateMatchIfAbsent(ctx, fromUserID, toUserID)
    if err != nil {
        return nil, err
    }
    if created {
        RecordMatch()
    }
    result.Matched = true
    result.Match = match
    return result, nil
}

func (s *service) GetMatches(ctx context.Context, userID int64) ([]*Match, error) {
    return s.repo.GetUserMatches(ctx, userID)
}

func (s *service) IsMatched(ctx context.Context, userA, userB int64) (bool, error) {
    return s.repo.MatchExists(ctx, userA, userB)
}
