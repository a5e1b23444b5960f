package templates

import "time"

// RelativeTimeLabel renders a coarse "time ago" label for feed rows and cards.
func RelativeTimeLabel(createdAt time.Time, now time.Time, loc Localizer) string {
	if createdAt.IsZero() {
		return T(loc, "web.time.just_now")
	}
	delta := now.Sub(createdAt.UTC())
	if delta < 0 {
		delta = 0
	}
	if delta < time.Minute {
		return T(loc, "web.time.just_now")
	}
	if delta < time.Hour {
		minutes := int(delta / time.Minute)
		if minutes <= 1 {
			return T(loc, "web.time.minute_ago")
		}
		return T(loc, "web.time.minutes_ago", minutes)
	}
	if delta < 24*time.Hour {
		hours := int(delta / time.Hour)
		if hours <= 1 {
			return T(loc, "web.time.hour_ago")
		}
		return T(loc, "web.time.hours_ago", hours)
	}
	days := int(delta / (24 * time.Hour))
	if days <= 1 {
		return T(loc, "web.time.day_ago")
	}
	return T(loc, "web.time.days_ago", days)
}
