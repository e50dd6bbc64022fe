package wizard

import (
	"context"

	"github.com/google/uuid"
)

// SnapshotStore is the opaque keyed storage the wizard state survives page
// reloads in. One snapshot per user; abandoned snapshots are the store's
// problem to expire, not the wizard's.
type SnapshotStore interface {
	// Get returns the stored snapshot for the user, or found=false when none
	// exists.
	Get(ctx context.Context, userID uuid.UUID) (snap *Snapshot, found bool, err error)
	// Put overwrites the stored snapshot for the user.
	Put(ctx context.Context, userID uuid.UUID, snap *Snapshot) error
	// Delete removes the stored snapshot. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, userID uuid.UUID) error
}
