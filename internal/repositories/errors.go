package repositories

import "errors"

var (
	ErrCardNotFound         = errors.New("card not found")
	ErrLocationNotFound     = errors.New("location not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
