package model

const (
	EntityName = "weekly_event"
)

// WeeklyEvent is a recurring marker shown every weekday on the calendar. It is
// purely informational and never participates in conflict detection.
type WeeklyEvent struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	FromHour int    `json:"from_hour"`
	ToHour   int    `json:"to_hour"`
}

func (e WeeklyEvent) GetID() string {
	return e.ID
}
