package project

import "errors"

var (
	ErrProjectNameRequired = errors.New("project name is required")
	ErrProjectIDRequired   = errors.New("project id is required")
	ErrProjectNotFound     = errors.New("project not found")
	ErrThreadNotFound      = errors.New("thread not found")
)
