package messages

import (
    "context"
    "errors"
)

var (
    ErrNotMatched     = errors.New("users are not matched")
    ErrMessageTooLong = errors.New("message content too long")
)

const defaultConversationLimit = 100

// Matcher reports whether two users have an active match. Satisfied by the
// matching service.
type Matcher interface {
    IsMatched(ctx context.Context, userA, userB int64) (bool, error)
}

type Service interface {
    SendMessage(ctx context.Context, fromUserID, toUserID int64, content string) (*Message, error)
    GetConversation(ctx context.Context, userID, otherUserID int64) ([]*Message, error)
}

type service struct {
    repo          Repository
    matcher       Matcher
    maxMessageLen int
}

func NewService(repo Repository, matcher Matcher, maxMessageLen int) Service {
    return &service{
        repo:          repo,
        matcher:       matcher,
        maxMessageLen: maxMessageLen,
    }
}

func (s *service) SendMessage(ctx context.Context, fromUserID, toUserID int64, content string) (*Message, error) {
    if len(content) > s.maxMessageLen {
        return nil, ErrMessageTooLong
    }

    matched, err := s.matcher.IsMatched(ctx, fromUserID, toUserID)
    if err != nil {
        return nil, err
    }
    if !matched {
        return nil, ErrNotMatched
    }

    return s.repo.CreateMessage(ctx, fromUserID, toUserID, content)
}

func (s *service) GetConversation(ctx context.Context, userID, otherUserID int64) ([]*Message, error) {
    matched, err := s.matcher.IsMatched(ctx, userID, otherUserID)
    if err != nil {
        return nil, err
    }
    if !matched {
        return nil, ErrNotMatched
    }

    msgs, err := s.repo.GetConversation(ctx, userID, otherUserID, defaultConversationLimit)
    if err != nil {
        return nil, err
    }

    if err := s.repo.MarkConversationRead(ctx, userID, otherUserID); err != nil {
        return nil, err
    }
    return msgs, nil
}
