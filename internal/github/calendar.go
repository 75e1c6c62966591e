package github

import (
	"github.com/JunaidJamshid123/Gitly-sub000/internal/models"
)

// contributionLevel buckets a raw daily count into the 0-4 intensity scale
// used for calendar rendering. Fixed thresholds matching GitHub's public
// convention; monotonic in count.
func contributionLevel(count int) int {
	switch {
	case count == 0:
		return 0
	case count <= 3:
		return 1
	case count <= 6:
		return 2
	case count <= 9:
		return 3
	default:
		return 4
	}
}

// buildCalendar converts the raw GraphQL payload into the rendering-ready
// calendar, preserving week and day ordering exactly as received.
func buildCalendar(resp *calendarResponse) *models.ContributionCalendar {
	raw := resp.Data.User.ContributionsCollection.ContributionCalendar

	calendar := &models.ContributionCalendar{
		TotalContributions: raw.TotalContributions,
		Weeks:              make([]models.ContributionWeek, 0, len(raw.Weeks)),
	}

	for _, week := range raw.Weeks {
		days := make([]models.ContributionDay, 0, len(week.ContributionDays))
		for _, day := range week.ContributionDays {
			days = append(days, models.ContributionDay{
				Date:    day.Date,
				Count:   day.ContributionCount,
				Weekday: day.Weekday,
				Level:   contributionLevel(day.ContributionCount),
			})
		}
		calendar.Weeks = append(calendar.Weeks, models.ContributionWeek{Days: days})
	}

	return calendar
}
