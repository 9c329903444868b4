package report

import "errors"

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidRange = errors.New("to must be on or after from")
)
