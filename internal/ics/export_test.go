//go:build unit

package ics_test

import (
	"strings"
	"testing"
	"time"

	"slotswapper/internal/ics"
	"slotswapper/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func slotView(title, status string, start time.Time) *queries.SlotView {
	return &queries.SlotView{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Title:     title,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    status,
		CreatedAt: start.Add(-24 * time.Hour),
		UpdatedAt: start.Add(-24 * time.Hour),
	}
}

func TestBuildFeed(t *testing.T) {
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("空のスロット一覧でも有効なカレンダーを生成する", func(t *testing.T) {
		feed := ics.BuildFeed(nil)

		assert.Contains(t, feed, "BEGIN:VCALENDAR")
		assert.Contains(t, feed, "END:VCALENDAR")
		assert.Contains(t, feed, "METHOD:PUBLISH")
		assert.Contains(t, feed, "PRODID:-//slotswapper//calendar//EN")
		assert.NotContains(t, feed, "BEGIN:VEVENT")
	})

	t.Run("スロットごとにVEVENTを出力する", func(t *testing.T) {
		views := []*queries.SlotView{
			slotView("Morning run", "BUSY", base),
			slotView("Evening shift", "BUSY", base.Add(8*time.Hour)),
		}

		feed := ics.BuildFeed(views)

		assert.Equal(t, 2, strings.Count(feed, "BEGIN:VEVENT"))
		assert.Contains(t, feed, "SUMMARY:Morning run")
		assert.Contains(t, feed, "SUMMARY:Evening shift")
		assert.Contains(t, feed, "UID:"+views[0].ID.String())
	})

	t.Run("SWAPPABLEは透明、それ以外は不透明として扱う", func(t *testing.T) {
		views := []*queries.SlotView{
			slotView("Offered", "SWAPPABLE", base),
		}
		feed := ics.BuildFeed(views)
		assert.Contains(t, feed, "TRANSP:TRANSPARENT")

		views[0].Status = "BUSY"
		feed = ics.BuildFeed(views)
		assert.Contains(t, feed, "TRANSP:OPAQUE")

		views[0].Status = "SWAP_PENDING"
		feed = ics.BuildFeed(views)
		assert.Contains(t, feed, "TRANSP:OPAQUE")
	})
}
