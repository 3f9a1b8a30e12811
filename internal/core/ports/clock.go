package ports

import "time"

// Clock is the source of "now" for every date written by the core.
type Clock interface {
	Now() time.Time
}
