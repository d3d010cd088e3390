package response

import "errors"

var (
	// ErrNotExist reports that the response path did not exist at stat
	// time. It is raised from the pre-send hook, before any frame is sent.
	ErrNotExist = errors.New("file does not exist")

	// ErrNotRegular reports that the response path resolved to something
	// other than a regular file (a directory, a device).
	ErrNotRegular = errors.New("not a regular file")
)
