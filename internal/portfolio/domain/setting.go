package domain

import (
	"encoding/json"
	"time"
)

// Setting is one site-wide configuration entry. Value holds arbitrary JSON
// supplied by the admin UI; the server stores it opaquely.
type Setting struct {
	Key       string
	Value     json.RawMessage
	UpdatedAt time.Time
}
