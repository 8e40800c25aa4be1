package core

import "errors"

// Common errors.
var (
	// ErrDataMissing indicates a payload could not be built because a
	// required field was absent.
	ErrDataMissing = errors.New("required block data is missing")

	// ErrDataInvalid indicates a payload field holds a value outside its
	// allowed range.
	ErrDataInvalid = errors.New("block data is invalid")

	// ErrAlreadyRegistered indicates a Set call without replace for a type
	// that already has a strategy.
	ErrAlreadyRegistered = errors.New("strategy already registered")

	// ErrNotRegistered indicates a Remove call for a type with no strategy.
	ErrNotRegistered = errors.New("strategy not registered")

	// ErrRendererUnknown indicates render time was reached with a block whose
	// type has neither an instance renderer nor a registered default.
	ErrRendererUnknown = errors.New("renderer unknown for block data type")

	// ErrUnsupportedData indicates a strategy was invoked with a payload of a
	// concrete type it does not support.
	ErrUnsupportedData = errors.New("data type not supported by strategy")

	// ErrUnknownEncoding indicates the configured encoding name does not
	// resolve to a known character encoding.
	ErrUnknownEncoding = errors.New("unknown character encoding")
)
