package wallet

import "errors"

// Service errors
var (
	ErrCardNotFound      = errors.New("card not found")
	ErrInvalidCardName   = errors.New("card name is required")
	ErrInvalidBankName   = errors.New("bank name is required")
	ErrNoDefaultCard     = errors.New("no default card set")
	ErrLocationUnknown   = errors.New("no location recorded")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)
