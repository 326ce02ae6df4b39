package service

import (
	"errors"

	"sprintpulse/internal/repository"
)

var (
	ErrInvalidAxis      = errors.New("unknown evaluation axis")
	ErrRepositoryExists = errors.New("repository already tracked")
	ErrNotFound         = repository.ErrNotFound
)
