package ics

import (
	"slotswapper/internal/domain/slot"
	"slotswapper/internal/usecase/queries"

	ical "github.com/arran4/golang-ical"
)

const prodID = "-//slotswapper//calendar//EN"

// BuildFeed renders a user's slots as an iCalendar document. Slots offered
// for swapping are marked transparent so subscribed calendars keep the time
// free.
func BuildFeed(views []*queries.SlotView) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, v := range views {
		event := cal.AddEvent(v.ID.String())
		event.SetSummary(v.Title)
		event.SetStartAt(v.StartTime)
		event.SetEndAt(v.EndTime)
		event.SetDtStampTime(v.UpdatedAt)
		event.SetCreatedTime(v.CreatedAt)
		event.SetModifiedAt(v.UpdatedAt)

		if v.Status == string(slot.StatusSwappable) {
			event.SetTimeTransparency(ical.TransparencyTransparent)
		} else {
			event.SetTimeTransparency(ical.TransparencyOpaque)
		}
	}

	return cal.Serialize()
}
