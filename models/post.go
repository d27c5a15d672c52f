package models

// Post types as understood by the upstream marketing app.
const (
	PostTypeBlog  = "BLOG"
	PostTypePromo = "PROMO"
)

// Post is a marketing blog or promotion entry.
type Post struct {
	ID        int    `json:"id,omitempty"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Type      string `json:"type"`
	Content   string `json:"content"`
	Image     string `json:"image,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Blast audiences accepted by the campaign endpoint.
const (
	AudienceAll      = "ALL"
	AudienceVIP      = "VIP"
	AudienceInactive = "INACTIVE"
)

// BlastRequest triggers an email campaign to the selected audience.
type BlastRequest struct {
	Audience string `json:"audience"`
	Subject  string `json:"subject"`
	HTML     string `json:"html_content"`
}
