package adapter

import "time"

// Clock provides the current time in the server's timezone. Use cases read "today" from it.
type Clock interface {
	Now() time.Time
}
