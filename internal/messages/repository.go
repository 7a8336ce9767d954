package messages

import (
    "context"
    "fmt"

    "github.com/jmoiron/sqlx"
)

type Repository interface {
    CreateMessage(ctx context.Context, fromUserID, toUserID int64, content string) (*Message, error)
    GetConversation(ctx context.Context, userA, userB int64, limit int) ([]*Message, error)
    MarkConversationRead(ctx context.Context, readerID, otherID int64) error
}

type postgresRepository struct {
    db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
    return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateMessage(ctx context.Context, fromUserID, toUserID int64, content string) (*Message, error) {
    query := `
        INSERT INTO messages (from_user_id, to_user_id, content)
        VALUES ($1, $2, $3)
        RETURNING id, from_user_id, to_user_id, content, read_at, created_at
    `

    var message Message
    if err := r.db.GetContext(ctx, &message, query, fromUserID, toUserID, content); err != nil {
        return nil, fmt.Errorf("failed to create message: %w", err)
    }
    return &message, nil
}

func (r *postgresRepository) GetConversation(ctx context.Context, userA, userB int64, limit int) ([]*Message, error) {
    query := `
        SELECT id, from_user_id, to_user_id, content, read_at, created_at
        FROM messages
        WHERE (from_user_id = $1 AND to_user_id = $2)
           OR (from_user_id = $2 AND to_user_id = $1)
        ORDER BY created_at DESC
        LIMIT $3
    `

    var msgs []*Message
    if err := r.db.SelectContext(ctx, &msgs, query, userA, userB, limit); err != nil {
        return nil, fmt.Errorf("failed to get conversation: %w", err)
    }
    return msgs, nil
}

func (r *postgresRepository) MarkConversationRead(ctx context.Context, readerID, otherID int64) error {
    query := `
        UPDATE messages
        SET read_at = CURRENT_TIMESTAMP
        WHERE to_user_id = $1 AND from_user_id = $2 AND read_at IS NULL
    `
    if _, err := r.db.ExecContext(ctx, query, readerID, otherID); err != nil {
        return fmt.Errorf("failed to mark messages read: %w", err)
    }
    return nil
}
