package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventItemAdded       EventKind = "ITEM_ADDED"
	EventQuantityUpdated EventKind = "QUANTITY_UPDATED"
	EventItemRemoved     EventKind = "ITEM_REMOVED"
	EventCartCleared     EventKind = "CART_CLEARED"
)

// Event describes a committed cart mutation. ProductID, Name and Quantity
// are empty for EventCartCleared.
type Event struct {
	ID         uuid.UUID
	Kind       EventKind
	ProductID  ProductID
	Name       string
	Quantity   int
	OccurredAt time.Time
}
