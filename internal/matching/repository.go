package matching

import (
    "context"
    "database/sql"
    "fmt"

    "github.com/jmoiron/sqlx"
)

// Repository is the storage layer for interactions, matches, and the read
// models the ranking engine consumes.
type Repository interface {
    UpsertInteraction(ctx context.Context, fromUserID, toUserID int64, kind string) (*Interaction, error)
    GetSeenUserIDs(ctx context.Context, userID int64) ([]int64, error)
    HasLiked(ctx context.Context, fromUserID, toUserID int64) (bool, error)
    CreateMatchIfAbsent(ctx context.Context, userA, userB int64) (*Match, bool, error)
    MatchExists(ctx context.Context, userA, userB int64) (bool, error)
    GetUserMatches(ctx context.Context, userID int64) ([]*Match, error)
    UserExists(ctx context.Context, userID int64) (bool, error)
    GetCandidateProfile(ctx context.Context, userID int64) (*CandidateProfile, error)
    ListCandidateProfiles(ctx context.Context, excludeUserID int64, excludeIDs []int64) ([]*CandidateProfile, error)
    GetPreferenceSets(ctx context.Context, userID int64) (*PreferenceSets, error)
    GetPreferenceSetsForUsers(ctx context.Context, userIDs []int64) (map[int64]*PreferenceSets, error)
    GetWatchedMovieListsForUsers(ctx context.Context, userIDs []int64) (map[int64][]*WatchedMovieEntry, error)
}

type postgresRepository struct {
    db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
    return &postgresRepository{db: db}
}

func (r *postgresRepository) UpsertInteraction(ctx context.Context, fromUserID, toUserID int64, kind string) (*Interaction, error) {
    query := `
        INSERT INTO interactions (from_user_id, to_user_id, kind)
        VALUES ($1, $2, $3)
        ON CONFLICT (from_user_id, to_user_id)
        DO UPDATE SET kind = EXCLUDED.kind, updated_at = CURRENT_TIMESTAMP
        RETURNING id, from_user_id, to_user_id, kind, created_at, updated_at
    `

    var interaction Interaction
    err := r.db.GetContext(ctx, &interaction, query, fromUserID, toUserID, kind)
    if err != nil {
        return nil, fmt.Errorf("failed to upsert interaction: %w", err)
    }
    return &interaction, nil
}

func (r *postgresRepository) GetSeenUserIDs(ctx context.Context, userID int64) ([]int64, error) {
    var ids []int64
    query := `SELECT to_user_id FROM interactions WHERE from_user_id = $1`
    if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
        return nil, fmt.Errorf("failed to get seen users: %w", err)
    }
    return ids, nil
}

func (r *postgresRepository) HasLiked(ctx context.Context, fromUserID, toUserID int64) (bool, error) {
    var exists bool
    query := `
        SELECT EXISTS(
            SELECT 1 FROM interactions
            WHERE from_user_id = $1 AND to_user_id = $2 AND kind = 'like'
        )
    `
    if err := r.db.GetContext(ctx, &exists, query, fromUserID, toUserID); err != nil {
        return false, fmt.Errorf("failed to check like: %w", err)
    }
    return exists, nil
}

// CreateMatchIfAbsent records a match for the unordered pair. The boolean
// reports whether this call inserted the row; false means the match already
// existed and the stored row is returned instead.
func (r *postgresRepository) CreateMatchIfAbsent(ctx context.Context, userA, userB int64) (*Match, bool, error) {
    user1, user2 := orderPair(userA, userB)

    insert := `
        INSERT INTO matches (user1_id, user2_id)
        VALUES ($1, $2)
        ON CONFLICT (user1_id, user2_id) DO NOTHING
        RETURNING id, user1_id, user2_id, matched_at
    `

    var match Match
    err := r.db.GetContext(ctx, &match, insert, user1, user2)
    if err == nil {
        return &match, true, nil
    }
    if err != sql.ErrNoRows {
        return nil, false, fmt.Errorf("failed to create match: %w", err)
    }

    // Conflict: another swipe won the race. Read the existing row.
    query := `SELECT id, user1_id, user2_id, matched_at FROM matches WHERE user1_id = $1 AND user2_id = $2`
    if err := r.db.GetContext(ctx, &match, query, user1, user2); err != nil {
        return nil, false, fmt.Errorf("failed to load existing match: %w", err)
    }
    return &match, false, nil
}

func (r *postgresRepository) MatchExists(ctx context.Context, userA, userB int64) (bool, error) {
    user1, user2 := orderPair(userA, userB)

    var exists bool
    query := `SELECT EXISTS(SELECT 1 FROM matches WHERE user1_id = $1 AND user2_id = $2)`
    if err := r.db.GetContext(ctx, &exists, query, user1, user2); err != nil {
        return false, fmt.Errorf("failed to check match: %w", err)
    }
    return exists, nil
}

func (r *postgresRepository) GetUserMatches(ctx context.Context, userID int64) ([]*Match, error) {
    query := `
        SELECT m.id, m.user1_id, m.user2_id, m.matched_at,
               u.id AS other_id, u.name AS other_name, u.age AS other_age,
               u.bio AS other_bio, u.photo_url AS other_photo_url
        FROM matches m
        JOIN users u ON u.id = CASE WHEN m.user1_id = $1 THEN m.user2_id ELSE m.user1_id END
        WHERE m.user1_id = $1 OR m.user2_id = $1
        ORDER BY m.matched_at DESC
    `

    rows, err := r.db.QueryContext(ctx, query, userID)
    if err != nil {
        return nil, fmt.Errorf("failed to get matches: %w", err)
    }
    defer rows.Close()

    var matches []*Match
    for rows.Next() {
        var m Match
        var other UserInfo
        err := rows.Scan(&m.ID, &m.User1ID, &m.User2ID, &m.MatchedAt,
            &other.ID, &other.Name, &other.Age, &other.Bio, &other.PhotoURL)
        if err != nil {
            return nil, fmt.Errorf("failed to scan match: %w", err)
        }
        m.MatchedUser = &other
        matches = append(matches, &m)
    }
    return matches, rows.Err()
}

func (r *postgresRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
    var exists bool
    query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`
    if err := r.db.GetContext(ctx, &exists, query, userID); err != nil {
        return false, fmt.Errorf("failed to check user: %w", err)
    }
    return exists, nil
}

const candidateColumns = `
    u.id, u.name, u.age, u.bio, u.photo_url,
    l.latitude, l.longitude, l.city, l.country, l.radius_km
`

func (r *postgresRepository) GetCandidateProfile(ctx context.Context, userID int64) (*CandidateProfile, error) {
    query := `
        SELECT ` + candidateColumns + `
        FROM users u
        LEFT JOIN locations l ON l.user_id = u.id
        WHERE u.id = $1
    `

    var profile CandidateProfile
    err := r.db.GetContext(ctx, &profile, query, userID)
    if err == sql.ErrNoRows {
        return nil, ErrUserNotFound
    }
    if err != nil {
        return nil, fmt.Errorf("failed to get candidate profile: %w", err)
    }
    return &profile, nil
}

func (r *postgresRepository) ListCandidateProfiles(ctx context.Context, excludeUserID int64, excludeIDs []int64) ([]*CandidateProfile, error) {
    query := `
        SELECT ` + candidateColumns + `
        FROM users u
        LEFT JOIN locations l ON l.user_id = u.id
        WHERE u.id <> ?
    `
    args := []interface{}{excludeUserID}

    if len(excludeIDs) > 0 {
        inQuery, inArgs, err := sqlx.In(` AND u.id NOT IN (?)`, excludeIDs)
        if err != nil {
            return nil, fmt.Errorf("failed to build candidate query: %w", err)
        }
        query += inQuery
        args = append(args, inArgs...)
    }
    query += ` ORDER BY u.id`

    var profiles []*CandidateProfile
    if err := r.db.SelectContext(ctx, &profiles, r.db.Rebind(query), args...); err != nil {
        return nil, fmt.Errorf("failed to list candidates: %w", err)
    }
    return profiles, nil
}

func (r *postgresRepository) GetPreferenceSets(ctx context.Context, userID int64) (*PreferenceSets, error) {
    sets := &PreferenceSets{}

    if err := r.db.SelectContext(ctx, &sets.GenreIDs,
        `SELECT genre_id FROM favorite_genres WHERE user_id = $1`, userID); err != nil {
        return nil, fmt.Errorf("failed to get favorite genres: %w", err)
    }
    if err := r.db.SelectContext(ctx, &sets.DirectorIDs,
        `SELECT director_id FROM favorite_directors WHERE user_id = $1`, userID); err != nil {
        return nil, fmt.Errorf("failed to get favorite directors: %w", err)
    }
    if err := r.db.SelectContext(ctx, &sets.MovieIDs,
        `SELECT movie_id FROM watched_movies WHERE user_id = $1`, userID); err != nil {
        return nil, fmt.Errorf("failed to get watched movies: %w", err)
    }
    return sets, nil
}

func (r *postgresRepository) GetPreferenceSetsForUsers(ctx context.Context, userIDs []int64) (map[int64]*PreferenceSets, error) {
    result := make(map[int64]*PreferenceSets, len(userIDs))
    if len(userIDs) == 0 {
        return result, nil
    }
    for _, id := range userIDs {
        result[id] = &PreferenceSets{}
    }

    type userRef struct {
        UserID int64 `db:"user_id"`
        RefID  int64 `db:"ref_id"`
    }

    load := func(query string, assign func(*PreferenceSets, int64)) error {
        q, args, err := sqlx.In(query, userIDs)
        if err != nil {
            return fmt.Errorf("failed to build preference query: %w", err)
        }

        var rows []userRef
        if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(q), args...); err != nil {
            return fmt.Errorf("failed to load preferences: %w", err)
        }
        for _, row := range rows {
            assign(result[row.UserID], row.RefID)
        }
        return nil
    }

    if err := load(`SELECT user_id, genre_id AS ref_id FROM favorite_genres WHERE user_id IN (?)`,
        func(s *PreferenceSets, id int64) { s.GenreIDs = append(s.GenreIDs, id) }); err != nil {
        return nil, err
    }
    if err := load(`SELECT user_id, director_id AS ref_id FROM favorite_directors WHERE user_id IN (?)`,
        func(s *PreferenceSets, id int64) { s.DirectorIDs = append(s.DirectorIDs, id) }); err != nil {
        return nil, err
    }
    if err := load(`SELECT user_id, movie_id AS ref_id FROM watched_movies WHERE user_id IN (?)`,
        func(s *PreferenceSets, id int64) { s.MovieIDs = append(s.MovieIDs, id) }); err != nil {
        return nil, err
    }
    return result, nil
}

func (r *postgresRepository) GetWatchedMovieListsForUsers(ctx context.Context, userIDs []int64) (map[int64][]*WatchedMovieEntry, error) {
    result := make(map[int64][]*WatchedMovieEntry, len(userIDs))
    if len(userIDs) == 0 {
        return result, nil
    }

    type movieRow struct {
        UserID int64 `db:"user_id"`
        WatchedMovieEntry
    }

    q, args, err := sqlx.In(`
        SELECT user_id, movie_id, title, rating
        FROM watched_movies
        WHERE user_id IN (?)
        ORDER BY user_id, movie_id
    `, userIDs)
    if err != nil {
        return nil, fmt.Errorf("failed to build watched movies query: %w", err)
    }

    var rows []movieRow
    if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(q), args...); err != nil {
        return nil, fmt.Errorf("failed to load watched movies: %w", err)
    }
    for _, row := range rows {
        entry := row.WatchedMovieEntry
        result[row.UserID] = append(result[row.UserID], &entry)
    }
    return result, nil
}

// orderPair returns the pair in canonical (smaller, larger) order.
func orderPair(a, b int64) (int64, int64) {
    if a < b {
        return a, b
    }
    return b, a
}
