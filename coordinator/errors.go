package coordinator

import "errors"

// ErrInvalidWorkerCount marks a Coordinator constructed with P <= 0;
// the stride partition divides by P and cannot proceed without at
// least one worker.
var ErrInvalidWorkerCount = errors.New("coordinator: worker count must be positive")
