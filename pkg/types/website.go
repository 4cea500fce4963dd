package types

import (
	"net/url"
	"time"
)

// Website is a bookmark to an external site (lottery operators, other
// collectors, auction pages).
type Website struct {
	WebsiteID string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Country   string    `json:"country"`
	Category  string    `json:"category,omitempty"`
	Logo      string    `json:"logo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidateURL checks that URL is an absolute http or https address.
func (w *Website) ValidateURL() error {
	u, err := url.Parse(w.URL)
	if err != nil {
		return ErrInvalidURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidURL
	}
	if u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}
