package item

import "fmt"

// ValidationError reports a name rejected before normalization.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// DuplicateError reports an add that collided with an existing item. Name
// holds the normalized form the caller attempted to add.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("❌ Item '%s' already exists in the list", e.Name)
}

// NotFoundError reports a removal that matched no stored item. Name holds
// the normalized form the caller asked to remove.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("❌ Item '%s' not found.", e.Name)
}
