package repository

import "errors"

var (
	ErrFailedToLoad   = errors.New("failed to load tasks")
	ErrFailedToSave   = errors.New("failed to save tasks")
	ErrFailedToInsert = errors.New("failed to insert task")
	ErrFailedToGet    = errors.New("failed to get task")
	ErrFailedToUpdate = errors.New("failed to update task")
	ErrDuplicateID    = errors.New("task id already exists")
)
