package errors

import "fmt"

var (
	ErrDuplicateEntity  = fmt.Errorf("entity already exists")
	ErrInvalidReference = fmt.Errorf("unknown entity reference")
)
