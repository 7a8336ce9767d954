package auth

import (
    "context"
    "database/sql"

    "github.com/jmoiron/sqlx"
)

type Repository interface {
    CreateUser(ctx context.Context, user *User) error
    GetUserByEmail(ctx context.Context, email string) (*User, error)
    GetUserByID(ctx context.Context, id int64) (*User, error)
    IsEmailTaken(ctx context.Context, email string) (bool, error)
}

type postgresRepository struct {
    db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
    return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateUser(ctx context.Context, user *User) error {
    query := `
        INSERT INTO users (email, password_hash, name, age)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at
    `

    return r.db.QueryRowxContext(
        ctx, query,
        user.Email, user.PasswordHash, user.Name, user.Age,
    ).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *postgresRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
    var user User
    query := `SELECT * FROM users WHERE email = $1`

    err := r.db.GetContext(ctx, &user, query, email)
    if err == sql.ErrNoRows {
        return nil, ErrUserNotFound
    }
    if err != nil {
        return nil, err
    }

    return &user, nil
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id int64) (*User, error) {
    var user User
    query := `SELECT * FROM users WHERE id = $1`

    err := r.db.GetContext(ctx, &user, query, id)
    if err == sql.ErrNoRows {
        return nil, ErrUserNotFound
    }
    if err != nil {
        return nil, err
    }

    return &user, nil
}

func (r *postgresRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
    var exists bool
    query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

    err := r.db.GetContext(ctx, &exists, query, email)
    return exists, err
}
