package service

import "errors"

var (
	ErrNoColumns       = errors.New("at least one column must be selected")
	ErrInvalidClientId = errors.New("client id should be an integer")
	ErrNothingToExport = errors.New("no data to export")
)
