package grid

import "errors"

var (
	// ErrInvalidAction is returned by Step for an action outside the action space
	ErrInvalidAction = errors.New("invalid action")

	// ErrNotReset is returned by Step before the first Reset
	ErrNotReset = errors.New("environment not reset")

	// ErrEpisodeDone is returned by Step once the episode has terminated
	ErrEpisodeDone = errors.New("episode is done, reset the environment")

	ErrInvalidConfig = errors.New("invalid grid config")
)
