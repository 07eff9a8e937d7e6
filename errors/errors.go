package errors

import "fmt"

var (
	ErrDuplicateJoin = fmt.Errorf("duplicate join attempt")
	ErrNotJoined     = fmt.Errorf("message received before join")
)
