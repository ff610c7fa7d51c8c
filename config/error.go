package config

import "fmt"

// Error represents an error in configuration loading.
type Error struct {
	reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("config error: %s", e.reason)
}
