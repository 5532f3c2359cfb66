package errors

import (
	"fmt"
)

var (
	ErrNotFound      = fmt.Errorf("not found")
	ErrInvalidFilter = fmt.Errorf("invalid filter")
	ErrEmptyDataset  = fmt.Errorf("empty dataset")
)
