package responses

// WeekView is the rendered calendar grid for one staff member and one week.
type WeekView struct {
	StaffID    string    `json:"staff_id"`
	WeekStart  string    `json:"week_start"`
	Days       []string  `json:"days"`
	Timeline   []string  `json:"timeline"`
	Rows       []GridRow `json:"rows"`
	SourceType string    `json:"source_type"`
	Layout     string    `json:"layout"`
	// Unregistered is set when no availability has been published at all;
	// the storefront then offers a plain reservation request instead of an
	// empty grid.
	Unregistered bool `json:"unregistered"`
}

// GridRow is one timeline label with a cell per day of the week.
type GridRow struct {
	TimeKey string     `json:"time_key"`
	Cells   []GridCell `json:"cells"`
}

type GridCell struct {
	Date    string `json:"date"`
	State   string `json:"state"`
	StartAt string `json:"start_at,omitempty"`
	EndAt   string `json:"end_at,omitempty"`
	IsToday bool   `json:"is_today"`
}
