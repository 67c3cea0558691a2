package music

import "errors"

var (
	ErrNotFound               = errors.New("path does not exist")
	ErrNotAFile               = errors.New("not a regular file")
	ErrNotADirectory          = errors.New("not a directory")
	ErrUnsupportedType        = errors.New("unsupported file type")
	ErrMetadataRead           = errors.New("cannot read metadata")
	ErrRenameFailed           = errors.New("rename failed")
	ErrMissingDuringTraversal = errors.New("entry vanished during traversal")
)
