package dto

// EntertainmentItem represents one piece of static entertainment content.
// Video items carry a URL; news items carry inline content and a date.
type EntertainmentItem struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	Date        string `json:"date,omitempty"`
}
