package databases

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/chatroom-api/models"
)

// IsNotFound reports whether err means that a FindOne matched nothing
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// IsDuplicate reports whether err is a unique index violation
func IsDuplicate(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// Unavailable wraps a driver failure (timeout, lost connection, server error)
// into models.ErrStoreUnavailable
func Unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", models.ErrStoreUnavailable, op, err)
}
