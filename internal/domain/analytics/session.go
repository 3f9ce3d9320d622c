package analytics

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// Session aggregates the activity of one browsing session
type Session struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID         string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	UserAgent         string    `gorm:"type:text"`
	DeviceType        string    `gorm:"type:varchar(20)"`
	IPAddress         string    `gorm:"type:varchar(45)"`
	FirstPage         string    `gorm:"type:text"`
	LastPage          string    `gorm:"type:text"`
	Referrer          string    `gorm:"type:text"`
	PageViews         int       `gorm:"not null;default:0"`
	ProductsViewed    int       `gorm:"not null;default:0"`
	InteractionsCount int       `gorm:"not null;default:0"`
	StartedAt         time.Time `gorm:"not null;index"`
	LastActivity      time.Time `gorm:"not null;index"`
	DurationSeconds   int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Session) TableName() string {
	return "analytics_sessions"
}

// NewSession starts a session at now
func NewSession(client ClientInfo, now time.Time) *Session {
	return &Session{
		ID:           uuid.New(),
		SessionID:    client.SessionID,
		UserAgent:    client.UserAgent,
		DeviceType:   client.DeviceType,
		IPAddress:    client.IPAddress,
		FirstPage:    client.PageURL,
		LastPage:     client.PageURL,
		Referrer:     client.Referrer,
		StartedAt:    now,
		LastActivity: now,
	}
}

// SessionActivity is what one request contributed to a session
type SessionActivity struct {
	PageViews      int
	ProductsViewed int
	Interactions   int
	LastPage       string
}

// Record adds activity observed at now
func (s *Session) Record(a SessionActivity, now time.Time) {
	s.PageViews += a.PageViews
	s.ProductsViewed += a.ProductsViewed
	s.InteractionsCount += a.Interactions
	if a.LastPage != "" {
		s.LastPage = a.LastPage
		if s.FirstPage == "" {
			s.FirstPage = a.LastPage
		}
	}
	if now.After(s.LastActivity) {
		s.LastActivity = now
	}
	s.DurationSeconds = int(s.LastActivity.Sub(s.StartedAt).Seconds())
}

// ResolveSessionKey picks the first non-empty candidate; with none it derives
// a stable anonymous key from the client's IP and user agent.
func ResolveSessionKey(ip, userAgent string, candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			if len(c) > 100 {
				return "h:" + Hash(c)
			}
			return c
		}
	}
	return "anon:" + Hash(ip+"|"+userAgent)
}

// Hash returns a hex encoded 128-bit blake2b digest of s
func Hash(s string) string {
	h, _ := blake2b.New(16, nil)
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// DetectDeviceType classifies a user agent as mobile, tablet or desktop
func DetectDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case ua == "":
		return ""
	case strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet"):
		return "tablet"
	case strings.Contains(ua, "mobi") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone"):
		return "mobile"
	default:
		return "desktop"
	}
}
