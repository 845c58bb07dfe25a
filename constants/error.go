package constants

import "errors"

var (
	// ErrUnknownFormat report format not supported
	ErrUnknownFormat = errors.New("unknown report format")
	// ErrUnknownSource instrument source not supported
	ErrUnknownSource = errors.New("unknown instrument source")
	// ErrNoInstruments no instrument loaded
	ErrNoInstruments = errors.New("no instruments")
	// ErrMissingColumn instrument file lacks a column
	ErrMissingColumn = errors.New("missing column")
)
