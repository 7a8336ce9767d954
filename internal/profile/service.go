// internal/profile/service.go

package profile

import (
    "context"
    "errors"

    "github.com/zekkencito/CineMatch-sub000/internal/common/utils"
    "github.com/zekkencito/CineMatch-sub000/internal/config"
)

var (
    ErrProfileNotFound  = errors.New("profile not found")
    ErrLocationNotFound = errors.New("location not set")
)

type Service interface {
    GetProfile(ctx context.Context, userID int64) (*Profile, error)
    UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) (*Profile, error)
    UpdateLocation(ctx context.Context, userID int64, req *UpdateLocationRequest) (*Location, error)
}

type service struct {
    repo Repository
    cfg  *config.Config
}

func NewService(repo Repository, cfg *config.Config) Service {
    return &service{repo: repo, cfg: cfg}
}

func (s *service) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
    return s.repo.GetProfile(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) (*Profile, error) {
    if err := utils.ValidateStruct(req); err != nil {
        return nil, err
    }

    profile, err := s.repo.GetProfile(ctx, userID)
    if err != nil {
        return nil, err
    }

    if req.Name != nil {
        profile.Name = *req.Name
    }
    if req.Age != nil {
        profile.Age = req.Age
    }
    if req.Bio != nil {
        profile.Bio = req.Bio
    }
    if req.PhotoURL != nil {
        profile.PhotoURL = req.PhotoURL
    }

    if err := s.repo.UpdateProfile(ctx, profile); err != nil {
        return nil, err
    }

    return profile, nil
}

func (s *service) UpdateLocation(ctx context.Context, userID int64, req *UpdateLocationRequest) (*Location, error) {
    if err := utils.ValidateStruct(req); err != nil {
        return nil, err
    }

    loc := &Location{
        UserID:    userID,
        Latitude:  req.Latitude,
        Longitude: req.Longitude,
        City:      req.City,
        Country:   req.Country,
        RadiusKm:  s.cfg.DefaultSearchRadiusKm,
    }
    if req.RadiusKm != nil {
        loc.RadiusKm = *req.RadiusKm
    }

    if err := s.repo.UpsertLocation(ctx, loc); err != nil {
        return nil, err
    }

    return loc, nil
}
