package analytics

import (
	"time"

	"github.com/google/uuid"
)

// DedupTTL outlives a UTC day so keys stay valid until the day rolls over in every timezone
const DedupTTL = 48 * time.Hour

// ViewDedupKey identifies one view type of one product by one session on one UTC day
func ViewDedupKey(sessionKey string, productID uuid.UUID, t EventType, at time.Time) string {
	return "analytics:view:" + DayKey(at) + ":" + string(t) + ":" + productID.String() + ":" + sessionKey
}

// SessionTouchKey identifies the first contact of a session with a product on one UTC day
func SessionTouchKey(sessionKey string, productID uuid.UUID, at time.Time) string {
	return "analytics:touch:" + DayKey(at) + ":" + productID.String() + ":" + sessionKey
}
