package profile

import (
    "context"
    "database/sql"

    "github.com/jmoiron/sqlx"
)

type Repository interface {
    GetProfile(ctx context.Context, userID int64) (*Profile, error)
    UpdateProfile(ctx context.Context, profile *Profile) error
    GetLocation(ctx context.Context, userID int64) (*Location, error)
    UpsertLocation(ctx context.Context, loc *Location) error
}

type postgresRepository struct {
    db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
    return &postgresRepository{db: db}
}

func (r *postgresRepository) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
    var profile Profile
    query := `
        SELECT id, email, name, age, bio, photo_url, created_at, updated_at
        FROM users
        WHERE id = $1
    `

    err := r.db.GetContext(ctx, &profile, query, userID)
    if err == sql.ErrNoRows {
        return nil, ErrProfileNotFound
    }
    if err != nil {
        return nil, err
    }

    // Location is optional; absence is not an error
    loc, err := r.GetLocation(ctx, userID)
    if err != nil && err != ErrLocationNotFound {
        return nil, err
    }
    profile.Location = loc

    return &profile, nil
}

func (r *postgresRepository) UpdateProfile(ctx context.Context, profile *Profile) error {
    query := `
        UPDATE users
        SET name = $2, age = $3, bio = $4, photo_url = $5, updated_at = CURRENT_TIMESTAMP
        WHERE id = $1
        RETURNING updated_at
    `

    err := r.db.QueryRowxContext(
        ctx, query,
        profile.ID, profile.Name, profile.Age, profile.Bio, profile.PhotoURL,
    ).Scan(&profile.UpdatedAt)
    if err == sql.ErrNoRows {
        return ErrProfileNotFound
    }

    return err
}

func (r *postgresRepository) GetLocation(ctx context.Context, userID int64) (*Location, error) {
    var loc Location
    query := `SELECT * FROM locations WHERE user_id = $1`

    err := r.db.GetContext(ctx, &loc, query, userID)
    if err == sql.ErrNoRows {
        return nil, ErrLocationNotFound
    }
    if err != nil {
        return nil, err
    }

    return &loc, nil
}

func (r *postgresRepository) UpsertLocation(ctx context.Context, loc *Location) error {
    query := `
        INSERT INTO locations (user_id, latitude, longitude, city, country, radius_km)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (user_id)
        DO UPDATE SET
            latitude = $2,
            longitude = $3,
            city = $4,
            country = $5,
            radius_km = $6,
            updated_at = CURRENT_TIMESTAMP
        RETURNING updated_at
    `

    return r.db.QueryRowxContext(
        ctx, query,
        loc.UserID, loc.Latitude, loc.Longitude, loc.City, loc.Country, loc.RadiusKm,
    ).Scan(&loc.UpdatedAt)
}
