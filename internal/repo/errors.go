package repo

import "errors"

// Sentinel errors shared by both storage backings. Anything else coming
// out of a repository is an opaque storage failure.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrDuplicateSlug   = errors.New("slug already in use")
)
