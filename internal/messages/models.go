package messages

import "time"

// Message is one chat message between two matched users.
type Message struct {
    ID         int64      `json:"id" db:"id"`
    FromUserID int64      `json:"from_user_id" db:"from_user_id"`
    ToUserID   int64      `json:"to_user_id" db:"to_user_id"`
    Content    string     `json:"content" db:"content"`
    ReadAt     *time.Time `json:"read_at,omitempty" db:"read_at"`
    CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

type SendMessageRequest struct {
    ToUserID int64  `json:"to_user_id" validate:"required"`
    Content  string `json:"content" validate:"required,min=1"`
}
