package models

// Card is a single news entry. Date, DateDisplay and CreatedAt are fixed at
// creation; only Title, Content and Visible change afterwards.
type Card struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Date        string `json:"date"`
	DateDisplay string `json:"date_display"`
	Visible     bool   `json:"visible"`
	CreatedAt   string `json:"created_at"`
}

// CardCollection is the full ordered card set, most recent first.
type CardCollection struct {
	Cards []*Card `json:"cards"`
}

// CardUpdate carries a partial update. A nil field is left untouched; a
// non-nil empty string is applied as given.
type CardUpdate struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
