package analytics

import (
	"time"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EventType is the kind of tracked storefront event
type EventType string

const (
	EventCardView     EventType = "product_card_view"
	EventDetailView   EventType = "product_detail_view"
	EventViewDuration EventType = "product_view_duration"
	EventInteraction  EventType = "product_interaction"
)

// IsView reports whether the event counts as a product view subject to deduplication
func (t EventType) IsView() bool {
	return t == EventCardView || t == EventDetailView
}

// InteractionType is a user action on a product
type InteractionType string

const (
	InteractionViewImage      InteractionType = "view_image"
	InteractionGalleryBrowse  InteractionType = "gallery_browse"
	InteractionShare          InteractionType = "share"
	InteractionFavorite       InteractionType = "favorite"
	InteractionUnfavorite     InteractionType = "unfavorite"
	InteractionContactRequest InteractionType = "contact_request"
	InteractionViewVideo      InteractionType = "view_video"
	InteractionCardClick      InteractionType = "card_click"
	InteractionRequestInfo    InteractionType = "request_info"
)

// DefaultInteractionWeight applies to interaction types without an explicit weight
const DefaultInteractionWeight = 0.2

var interactionWeights = map[InteractionType]float64{
	InteractionViewImage:      0.2,
	InteractionGalleryBrowse:  0.3,
	InteractionShare:          1.0,
	InteractionFavorite:       0.8,
	InteractionUnfavorite:     -0.5,
	InteractionContactRequest: 1.5,
	InteractionViewVideo:      0.5,
	InteractionCardClick:      0.4,
	InteractionRequestInfo:    1.2,
}

// Weight returns the ranking weight of the interaction type
func (t InteractionType) Weight() float64 {
	if w, ok := interactionWeights[t]; ok {
		return w
	}
	return DefaultInteractionWeight
}

// InteractionWeight returns the weight of a single tracked interaction.
// A completed video counts 1.0; a video watched longer than 30s earns up to +1.0 on top of its base weight.
func InteractionWeight(t InteractionType, data shared.JSONMap) float64 {
	weight := t.Weight()
	if t != InteractionViewVideo || data == nil {
		return weight
	}
	if data.String("action") == "complete" {
		return 1.0
	}
	if d := data.Float("duration"); d > 30 {
		weight += min(d/60, 1.0)
	}
	return weight
}

// Event is one stored analytics event
type Event struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_analytics_events_product_type_date,priority:1"`
	EventType    EventType      `gorm:"type:varchar(50);not null;index:idx_analytics_events_product_type_date,priority:2"`
	EventSubtype string         `gorm:"type:varchar(50);index"`
	EventData    shared.JSONMap `gorm:"type:jsonb"`
	SessionID    string         `gorm:"type:varchar(100);index:idx_analytics_events_session_date,priority:1"`
	UserAgent    string         `gorm:"type:text"`
	DeviceType   string         `gorm:"type:varchar(20)"`
	Referrer     string         `gorm:"type:text"`
	PageURL      string         `gorm:"type:text"`
	IPAddress    string         `gorm:"type:varchar(45)"`
	CreatedAt    time.Time      `gorm:"not null;index:idx_analytics_events_product_type_date,priority:3;index:idx_analytics_events_session_date,priority:2"`
}

// TableName returns the table name for GORM
func (Event) TableName() string {
	return "analytics_events"
}

// NewEvent creates an event stamped with the current UTC time
func NewEvent(productID uuid.UUID, eventType EventType, subtype string, data shared.JSONMap, client ClientInfo) *Event {
	return &Event{
		ID:           uuid.New(),
		ProductID:    productID,
		EventType:    eventType,
		EventSubtype: subtype,
		EventData:    data,
		SessionID:    client.SessionID,
		UserAgent:    client.UserAgent,
		DeviceType:   client.DeviceType,
		Referrer:     client.Referrer,
		PageURL:      client.PageURL,
		IPAddress:    client.IPAddress,
		CreatedAt:    time.Now().UTC(),
	}
}

// ClientInfo describes who sent an event
type ClientInfo struct {
	SessionID  string
	UserAgent  string
	DeviceType string
	Referrer   string
	PageURL    string
	IPAddress  string
}
