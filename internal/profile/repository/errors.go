package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert profile")
	ErrFailedToGet    = errors.New("failed to get profile")
	ErrFailedToList   = errors.New("failed to list profiles")
	ErrFailedToUpdate = errors.New("failed to update profile")
	ErrFailedToDelete = errors.New("failed to delete profile")
	ErrDuplicate      = errors.New("profile agent type already exists")
)
