package crud

import "errors"

var ErrEmptyField = errors.New("field name must not be empty")
