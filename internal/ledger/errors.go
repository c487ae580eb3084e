package ledger

import "fmt"

// StorageError reports a failed filesystem operation against a storage
// document. Callers distinguish it with errors.As to decide whether to retry
// or discard the change.
type StorageError struct {
	Op   string // "load", "save"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
