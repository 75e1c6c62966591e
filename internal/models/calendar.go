package models

// ContributionDay is a single day in a contribution calendar. Level is
// computed client-side from Count; the GraphQL source only provides the raw
// count.
type ContributionDay struct {
	Date    string `json:"date"`
	Count   int    `json:"count"`
	Weekday int    `json:"weekday"`
	Level   int    `json:"level"`
}

// ContributionWeek holds the days of one calendar week, Sunday first, in the
// order GitHub returned them.
type ContributionWeek struct {
	Days []ContributionDay `json:"days"`
}

// ContributionCalendar is a year of daily contribution counts for one user.
// Week and day ordering is preserved exactly as received (weeks
// chronological, days Sunday-first).
type ContributionCalendar struct {
	TotalContributions int                `json:"total_contributions"`
	Weeks              []ContributionWeek `json:"weeks"`
}
