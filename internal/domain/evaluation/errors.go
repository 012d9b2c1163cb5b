package evaluation

import "errors"

var (
	ErrTaskNotFound   = errors.New("evaluation task not found")
	ErrTaskNotPending = errors.New("evaluation task is not pending")
)
