// internal/auth/service.go
// Registration, login and token lifecycle.
// Refresh tokens carry a uuid jti; when Redis is available the jti is the
// server-side session record, so logout and rotation actually revoke.

package auth

import (
    "context"
    "errors"
    "fmt"
    "strings"
    "time"

    "github.com/go-redis/redis/v8"
    "github.com/google/uuid"
    "golang.org/x/crypto/bcrypt"

    "github.com/zekkencito/CineMatch-sub000/internal/common/utils"
)

// Common errors
var (
    ErrUserNotFound       = errors.New("user not found")
    ErrInvalidCredentials = errors.New("invalid credentials")
    ErrEmailAlreadyExists = errors.New("email already exists")
    ErrInvalidToken       = errors.New("invalid token")
)

// Service interface
type Service interface {
    Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
    Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
    RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error)
    ValidateToken(ctx context.Context, token string) (*utils.JWTClaims, error)
    Logout(ctx context.Context, refreshToken string) error
    GetUserByID(ctx context.Context, userID int64) (*User, error)
}

// Config holds service configuration
type Config struct {
    JWTSecret          string
    AccessTokenExpiry  time.Duration
    RefreshTokenExpiry time.Duration
    BCryptCost         int
}

type service struct {
    repo   Repository
    redis  *redis.Client // optional; nil disables server-side revocation
    config *Config
}

// NewService creates a new auth service
func NewService(repo Repository, redisClient *redis.Client, config *Config) Service {
    return &service{
        repo:   repo,
        redis:  redisClient,
        config: config,
    }
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
    if err := utils.ValidateStruct(req); err != nil {
        return nil, err
    }

    email := strings.ToLower(strings.TrimSpace(req.Email))

    if taken, err := s.repo.IsEmailTaken(ctx, email); err != nil {
        return nil, fmt.Errorf("failed to check email: %w", err)
    } else if taken {
        return nil, ErrEmailAlreadyExists
    }

    hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BCryptCost)
    if err != nil {
        return nil, fmt.Errorf("failed to hash password: %w", err)
    }

    user := &User{
        Email:        email,
        PasswordHash: string(hash),
        Name:         strings.TrimSpace(req.Name),
        Age:          req.Age,
    }

    if err := s.repo.CreateUser(ctx, user); err != nil {
        return nil, err
    }

    return s.issueTokens(ctx, user)
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
    if err := utils.ValidateStruct(req); err != nil {
        return nil, err
    }

    user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
    if err != nil {
        if errors.Is(err, ErrUserNotFound) {
            return nil, ErrInvalidCredentials
        }
        return nil, err
    }

    if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
        return nil, ErrInvalidCredentials
    }

    return s.issueTokens(ctx, user)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
    claims, err := utils.ValidateJWT(refreshToken, s.config.JWTSecret)
    if err != nil {
        return nil, ErrInvalidToken
    }

    if claims.Type != "refresh" {
        return nil, ErrInvalidToken
    }

    // With Redis available the session must still exist server-side
    if s.redis != nil {
        stored, err := s.redis.Get(ctx, refreshKey(claims.TokenID)).Result()
        if err != nil || stored != fmt.Sprintf("%d", claims.UserID) {
            return nil, ErrInvalidToken
        }
        // Rotation: the old session is consumed
        s.redis.Del(ctx, refreshKey(claims.TokenID))
    }

    user, err := s.repo.GetUserByID(ctx, claims.UserID)
    if err != nil {
        return nil, err
    }

    return s.issueTokens(ctx, user)
}

func (s *service) ValidateToken(ctx context.Context, token string) (*utils.JWTClaims, error) {
    claims, err := utils.ValidateJWT(token, s.config.JWTSecret)
    if err != nil {
        return nil, ErrInvalidToken
    }
    return claims, nil
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
    claims, err := utils.ValidateJWT(refreshToken, s.config.JWTSecret)
    if err != nil || claims.Type != "refresh" {
        return ErrInvalidToken
    }

    if s.redis != nil {
        return s.redis.Del(ctx, refreshKey(claims.TokenID)).Err()
    }
    return nil
}

func (s *service) GetUserByID(ctx context.Context, userID int64) (*User, error) {
    return s.repo.GetUserByID(ctx, userID)
}

// issueTokens builds the access/refresh token pair for a user
func (s *service) issueTokens(ctx context.Context, user *User) (*AuthResponse, error) {
    now := time.Now()

    accessToken, err := utils.GenerateJWT(&utils.JWTClaims{
        UserID:    user.ID,
        Email:     user.Email,
        Type:      "access",
        ExpiresAt: now.Add(s.config.AccessTokenExpiry).Unix(),
        IssuedAt:  now.Unix(),
        Issuer:    "cinematch",
    }, s.config.JWTSecret)
    if err != nil {
        return nil, err
    }

    jti := uuid.NewString()
    refreshToken, err := utils.GenerateJWT(&utils.JWTClaims{
        UserID:    user.ID,
        Email:     user.Email,
        Type:      "refresh",
        TokenID:   jti,
        ExpiresAt: now.Add(s.config.RefreshTokenExpiry).Unix(),
        IssuedAt:  now.Unix(),
        Issuer:    "cinematch",
    }, s.config.JWTSecret)
    if err != nil {
        return nil, err
    }

    if s.redis != nil {
        err := s.redis.Set(ctx, refreshKey(jti),
            fmt.Sprintf("%d", user.ID), s.config.RefreshTokenExpiry).Err()
        if err != nil {
            return nil, fmt.Errorf("failed to store refresh session: %w", err)
        }
    }

    return &AuthResponse{
        User:         user,
        AccessToken:  accessToken,
        RefreshToken: refreshToken,
        ExpiresIn:    int64(s.config.AccessTokenExpiry.Seconds()),
    }, nil
}

func refreshKey(jti string) string {
    return "auth:refresh:" + jti
}
