package vtree

import "github.com/pkg/errors"

// Error taxonomy shared by every layer. Operations wrap these with context, so
// classify with errors.Is.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrPathNotFound      = errors.New("path not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrDirectoryNotEmpty = errors.New("directory not empty")
	ErrIOFailure         = errors.New("i/o failure")
	ErrUnknownCommand    = errors.New("unknown command")
)
