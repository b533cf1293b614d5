package model

import "time"

// Project owns threads.
type Project struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
