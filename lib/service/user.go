package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/vaulthive/vaulthive.go/db/models"
	"github.com/vaulthive/vaulthive.go/lib/security"
	"github.com/vaulthive/vaulthive.go/lib/tokens"
)

func (svc *VaulthiveService) CreateUser(ctx context.Context, username, email, password string) (*models.User, error) {
	existing := &models.User{}
	err := svc.DB.NewSelect().Model(existing).Where("email = ?", email).Limit(1).Scan(ctx)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hashedPassword, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Username: username,
		Password: hashedPassword,
	}
	if _, err := svc.DB.NewInsert().Model(user).Exec(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

func (svc *VaulthiveService) LoginUser(ctx context.Context, email, password string) (*models.User, string, error) {
	user := &models.User{}
	err := svc.DB.NewSelect().Model(user).Where("email = ?", email).Limit(1).Scan(ctx)
	if err != nil {
		return nil, "", ErrBadCredentials
	}
	if !security.VerifyPassword(user.Password, password) {
		return nil, "", ErrBadCredentials
	}

	accessToken, err := tokens.GenerateAccessToken(svc.Config.JWTSecret, svc.Config.JWTAccessTokenExpiry, user)
	if err != nil {
		return nil, "", err
	}
	return user, accessToken, nil
}

func (svc *VaulthiveService) FindUser(ctx context.Context, userId string) (*models.User, error) {
	user := &models.User{}
	err := svc.DB.NewSelect().Model(user).Where("id = ?", userId).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
