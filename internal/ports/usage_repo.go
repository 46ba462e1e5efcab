package ports

import "context"

type UsageRepository interface {
	// CountForDay returns the usage counter for (user, day), 0 when absent.
	// Day is a calendar date formatted as 2006-01-02.
	CountForDay(ctx context.Context, userID int, day string) (int, error)

	// IncrementWithCeiling bumps the counter by one unless it already
	// reached limit, in which case it stays put. Returns the counter
	// value after the call. The operation is atomic in the store, so
	// concurrent requests can never push the counter past limit.
	IncrementWithCeiling(ctx context.Context, userID int, day string, limit int) (int, error)
}
