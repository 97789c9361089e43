package agenda

type CommandRequest struct {
	UserID          string `json:"-"`
	Text            string `json:"text" validate:"required"`
	Origin          string `json:"origin" validate:"omitempty,oneof=chat voice manual"`
	TZOffsetMinutes *int   `json:"tz_offset_minutes" validate:"omitempty,min=-720,max=840"`
	AudioLink       string `json:"-"`
}

type CreateItemRequest struct {
	UserID    string   `json:"-"`
	Kind      string   `json:"kind" validate:"required,oneof=routine agenda reminder event"`
	Title     string   `json:"title" validate:"required"`
	Date      string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string   `json:"end_time" validate:"required,datetime=15:04"`
	Recurring bool     `json:"recurring"`
	Weekdays  []string `json:"weekdays" validate:"omitempty,dive,oneof=mon tue wed thu fri sat sun"`
	Category  string   `json:"category" validate:"omitempty,oneof=work study personal health"`
}

type ItemResponse struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	Kind      string   `json:"kind"`
	Title     string   `json:"title"`
	Date      string   `json:"date,omitempty"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Recurring bool     `json:"recurring"`
	Weekdays  []string `json:"weekdays,omitempty"`
	Origin    string   `json:"origin"`
	Category  string   `json:"category"`
	AudioLink string   `json:"audio_link,omitempty"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}

// CommandResponse is returned by the natural language endpoint. Either Item
// is set (a creation command) or Query is true and Entries carries the
// requested view.
type CommandResponse struct {
	Query        bool          `json:"query"`
	Period       string        `json:"period,omitempty"`
	Entries      []ViewEntry   `json:"entries,omitempty"`
	Item         *ItemResponse `json:"item,omitempty"`
	Confirmation string        `json:"confirmation,omitempty"`
}

// ViewEntry is a single occurrence inside a period view. Routines are
// expanded into one entry per matching day of the window.
type ViewEntry struct {
	ItemID    string `json:"item_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Title     string `json:"title"`
	Kind      string `json:"kind"`
	Category  string `json:"category"`
	Recurring bool   `json:"recurring"`
}

type ViewResponse struct {
	Period  string      `json:"period"`
	From    string      `json:"from"`
	To      string      `json:"to"`
	Entries []ViewEntry `json:"entries"`
}
