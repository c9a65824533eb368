package engine

import "github.com/google/uuid"

// newRunID tags a costing run so its log lines can be grouped.
func newRunID() string {
	return uuid.NewString()
}
