// Package presence tracks which dashboard accounts are currently online.
// An account is online while its heartbeat key has not expired; closing the
// browser simply lets the key lapse.
package presence

import (
	"context"
	"time"
)

// DefaultTTL is how long a heartbeat keeps an account online. The frontend
// beats every 30 seconds, so three missed beats mark the account offline.
const DefaultTTL = 90 * time.Second

// Tracker records and queries account liveness.
type Tracker interface {
	// Heartbeat marks the account online for the tracker's TTL.
	Heartbeat(ctx context.Context, accountID string) error
	// Online returns the IDs of accounts with a live heartbeat.
	Online(ctx context.Context) ([]string, error)
	// Offline drops an account's heartbeat immediately (logout).
	Offline(ctx context.Context, accountID string) error
}
