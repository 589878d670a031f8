package domain

import "time"

type Link struct {
	ShortCode   string     `db:"short_code"`
	OriginalURL string     `db:"original_url"`
	Clicks      int64      `db:"clicks"`
	LastClicked *time.Time `db:"last_clicked"`
	CreatedAt   time.Time  `db:"created_at"`
}

// Clone returns a copy that shares no memory with l.
func (l *Link) Clone() *Link {
	c := *l
	if l.LastClicked != nil {
		t := *l.LastClicked
		c.LastClicked = &t
	}
	return &c
}

type CreateLinkRequest struct {
	URL  string `json:"url"`
	Code string `json:"code,omitempty"`
}

type LinkResponse struct {
	ShortCode   string     `json:"short_code"`
	ShortURL    string     `json:"short_url"`
	OriginalURL string     `json:"original_url"`
	Clicks      int64      `json:"clicks"`
	LastClicked *time.Time `json:"last_clicked,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

type ListLinksResponse struct {
	Links []LinkResponse `json:"links"`
}

// NewLinkResponse renders l for the API. CreatedAt is omitted for projected
// records that were loaded without it.
func NewLinkResponse(l *Link, baseURL string) LinkResponse {
	resp := LinkResponse{
		ShortCode:   l.ShortCode,
		ShortURL:    baseURL + "/" + l.ShortCode,
		OriginalURL: l.OriginalURL,
		Clicks:      l.Clicks,
		LastClicked: l.LastClicked,
	}
	if !l.CreatedAt.IsZero() {
		createdAt := l.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}
