package catalog

import "errors"

var (
	// -- Resource State --
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrSlugTaken        = errors.New("slug already taken")
)
