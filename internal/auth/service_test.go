package auth

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "golang.org/x/crypto/bcrypt"
)

type fakeRepository struct {
    users  map[int64]*User
    nextID int64
}

func newFakeRepository() *fakeRepository {
    return &fakeRepository{users: make(map[int64]*User)}
}

func (f *fakeRepository) CreateUser(_ context.Context, user *User) error {
    f.nextID++
    user.ID = f.nextID
    user.CreatedAt = time.Now()
    user.UpdatedAt = user.CreatedAt
    f.users[user.ID] = user
    return nil
}

func (f *fakeRepository) GetUserByEmail(_ context.Context, email string) (*User, error) {
    for _, u := range f.users {
        if u.Email == email {
            return u, nil
        }
    }
    return nil, ErrUserNotFound
}

func (f *fakeRepository) GetUserByID(_ context.Context, userID int64) (*User, error) {
    u, ok := f.users[userID]
    if !ok {
        return nil, ErrUserNotFound
    }
    return u, nil
}

func (f *fakeRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
    _, err := f.GetUserByEmail(ctx, email)
    return err == nil, nil
}

func newTestService(repo Repository) Service {
    return NewService(repo, nil, &Config{
        JWTSecret:          "test-secret",
        AccessTokenExpiry:  15 * time.Minute,
        RefreshTokenExpiry: 7 * 24 * time.Hour,
        BCryptCost:         bcrypt.MinCost,
    })
}

func TestRegisterAndLogin(t *testing.T) {
    repo := newFakeRepository()
    svc := newTestService(repo)
    ctx := context.Background()

    resp, err := svc.Register(ctx, &RegisterRequest{
        Email:    "Ada@Example.com",
        Password: "correcthorse",
        Name:     "Ada",
    })
    require.NoError(t, err)
    assert.NotEmpty(t, resp.AccessToken)
    assert.NotEmpty(t, resp.RefreshToken)
    // email is normalized and the password never stored in the clear
    assert.Equal(t, "ada@example.com", resp.User.Email)
    assert.NotEqual(t, "correcthorse", resp.User.PasswordHash)

    login, err := svc.Login(ctx, &LoginRequest{Email: "ada@example.com", Password: "correcthorse"})
    require.NoError(t, err)
    assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
    repo := newFakeRepository()
    svc := newTestService(repo)
    ctx := context.Background()

    req := &RegisterRequest{Email: "ada@example.com", Password: "correcthorse", Name: "Ada"}
    _, err := svc.Register(ctx, req)
    require.NoError(t, err)

    _, err = svc.Register(ctx, req)
    assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
    repo := newFakeRepository()
    svc := newTestService(repo)
    ctx := context.Background()

    _, err := svc.Register(ctx, &RegisterRequest{
        Email: "ada@example.com", Password: "correcthorse", Name: "Ada",
    })
    require.NoError(t, err)

    _, err = svc.Login(ctx, &LoginRequest{Email: "ada@example.com", Password: "wrong-password"})
    assert.ErrorIs(t, err, ErrInvalidCredentials)

    _, err = svc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "whatever"})
    assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
    repo := newFakeRepository()
    svc := newTestService(repo)
    ctx := context.Background()

    resp, err := svc.Register(ctx, &RegisterRequest{
        Email: "ada@example.com", Password: "correcthorse", Name: "Ada",
    })
    require.NoError(t, err)

    refreshed, err := svc.RefreshToken(ctx, resp.RefreshToken)
    require.NoError(t, err)
    assert.Equal(t, resp.User.ID, refreshed.User.ID)

    // an access token is not accepted as a refresh token
    _, err = svc.RefreshToken(ctx, resp.AccessToken)
    assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
    svc := newTestService(newFakeRepository())

    _, err := svc.ValidateToken(context.Background(), "not-a-jwt")
    assert.ErrorIs(t, err, ErrInvalidToken)
}
