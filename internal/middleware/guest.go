package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const (
	GuestIDHeader = "X-Guest-ID"
	guestIDKey    = "guest_id"
)

// GuestIdentity resolves the calling guest from X-Guest-ID. Who may act as
// which guest is decided upstream; this only rejects absent or malformed ids.
func GuestIdentity() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(GuestIDHeader)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing " + GuestIDHeader + " header"})
			return
		}
		if _, err := uuid.Parse(id); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, ginext.H{"error": "invalid guest id"})
			return
		}
		c.Set(guestIDKey, id)

		c.Next()
	}
}

// GuestID returns the id stored by GuestIdentity.
func GuestID(c *ginext.Context) string {
	return c.GetString(guestIDKey)
}
