package service

import "errors"

var (
	ErrEmailTaken           = errors.New("an account with this email already exists")
	ErrBadCredentials       = errors.New("bad credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCategory      = errors.New("unknown asset category")
	ErrInvalidValuation     = errors.New("valuation must not be negative")
	ErrAssetNotFound        = errors.New("asset not found")
	ErrNotAssetOwner        = errors.New("only the asset owner can tokenize it")
	ErrAlreadyTokenized     = errors.New("asset is already tokenized")
	ErrTokenNotFound        = errors.New("token not found")
	ErrInvalidRewardAmount  = errors.New("reward amount must be a positive integer")
	ErrInvalidWalletAddress = errors.New("invalid wallet address")
)
