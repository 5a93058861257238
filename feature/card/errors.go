package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a submitted card id does not belong to the
// targeted deck.
var ErrNotFound = errors.New("card not found")

// notFoundError lists the offending ids of a rejected replace request.
func notFoundError(ids []string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, strings.Join(ids, ", "))
}
