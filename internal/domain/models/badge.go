package models

// Badge is the visual classification of a status value. Every view that
// renders a status uses this one mapping.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

const (
	BadgeGreen  = "green"
	BadgeRed    = "red"
	BadgeYellow = "yellow"
	BadgeGray   = "gray"
)

// BadgeFor maps any status string to its badge. The mapping is total:
// unknown values fall back to gray.
func BadgeFor(status string) Badge {
	switch status {
	case string(BookingAccepted):
		return Badge{Label: status, Color: BadgeGreen}
	case string(BookingRejected):
		return Badge{Label: status, Color: BadgeRed}
	case string(BookingAssigned), string(BookingPending):
		return Badge{Label: status, Color: BadgeYellow}
	default:
		return Badge{Label: status, Color: BadgeGray}
	}
}
