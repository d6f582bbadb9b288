package sessions

import (
	"context"
	"time"
)

// Repository is the key-value backing of the session authority. An expired
// row and an absent row are indistinguishable to Get.
type Repository interface {
	// Put stores token -> userID for the given validity window.
	Put(ctx context.Context, token string, userID string, validity time.Duration) error
	// Get returns the user id for a live token, or common.ErrorNotFound on
	// any miss (expired, revoked, never issued).
	Get(ctx context.Context, token string) (string, error)
	// Delete removes the token. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
