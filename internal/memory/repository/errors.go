package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToBegin  = errors.New("failed to begin transaction")
	ErrFailedToCommit = errors.New("failed to commit transaction")
	ErrEmptyEmbedding = errors.New("embedding is empty")
	ErrEntryNotFound  = errors.New("semantic entry not found")
)
