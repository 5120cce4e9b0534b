package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is the root of every "entity does not exist" error.
var ErrNotFound = errors.New("not found")

var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
)

// ErrInvalidArgument marks input that is structurally unusable, e.g. a nil request.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrConflict is the root of errors caused by the current state of the store.
var ErrConflict = errors.New("conflict")

var (
	ErrDuplicateCategoryName = fmt.Errorf("%w: category name already exists", ErrConflict)
	ErrCategoryInUse         = fmt.Errorf("%w: category still has products", ErrConflict)
)

// NotFoundError carries the id that could not be resolved.
type NotFoundError struct {
	Resource string
	ID       uint
	Err      error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %d", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func CategoryNotFound(id uint) error {
	return &NotFoundError{Resource: "category", ID: id, Err: ErrCategoryNotFound}
}

func ProductNotFound(id uint) error {
	return &NotFoundError{Resource: "product", ID: id, Err: ErrProductNotFound}
}
