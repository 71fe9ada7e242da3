package operations

import "errors"

var (
	ErrInvalidTitle = errors.New("invalid title")
	ErrNoBoard      = errors.New("document has no headings")
)
