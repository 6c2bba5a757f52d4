package domain_test

import (
	"testing"
	"time"
	_ "time/tzdata" // DST tests need real zone data on minimal images.

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homesweetlove/club-of-dcu.io/internal/domain"
)

// now is a fixed afternoon so midnight truncation is exercised.
var now = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

// recruitingIn returns a recruiting club whose deadline is n days after now.
func recruitingIn(n int) domain.Club {
	return domain.Club{Recruiting: true, RecruitEnd: strPtr(now.AddDate(0, 0, n).Format("2006-01-02"))}
}

// ---- ParseCalendarDate -----------------------------------------------------

func TestParseCalendarDate_Valid(t *testing.T) {
	got, ok := domain.ParseCalendarDate("2026-03-10", time.UTC)

	require.True(t, ok)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestParseCalendarDate_AnchorsAtMidnightInLocation(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)

	got, ok := domain.ParseCalendarDate("2026-03-10", seoul)

	require.True(t, ok)
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, seoul, got.Location())
}

func TestParseCalendarDate_Rejects(t *testing.T) {
	for _, s := range []string{
		"",
		"2026-3-10",
		"2026/03/10",
		"2026-03-10T00:00:00",
		" 2026-03-10",
		"2026-02-30",
		"2026-13-01",
		"tomorrow",
	} {
		t.Run(s, func(t *testing.T) {
			_, ok := domain.ParseCalendarDate(s, time.UTC)
			assert.False(t, ok)
		})
	}
}

// ---- DaysUntil -------------------------------------------------------------

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-03-10", 0},
		{"2026-03-11", 1},
		{"2026-03-09", -1},
		{"2026-04-10", 31},
		{"2025-03-10", -365},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, ok := domain.ParseCalendarDate(tt.date, time.UTC)
			require.True(t, ok)
			assert.Equal(t, tt.want, domain.DaysUntil(d, now))
		})
	}
}

// TestDaysUntil_AcrossDST verifies that the 23-hour day of a spring-forward
// transition still counts as one whole day.
func TestDaysUntil_AcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	before := time.Date(2026, time.March, 7, 22, 0, 0, 0, ny)
	d, ok := domain.ParseCalendarDate("2026-03-09", ny)
	require.True(t, ok)

	assert.Equal(t, 2, domain.DaysUntil(d, before))
}

// ---- Classify ----------------------------------------------------------------

func TestClassify_Thresholds(t *testing.T) {
	tests := []struct {
		days int
		want domain.Urgency
	}{
		{-1, domain.UrgencyClosed},
		{0, domain.UrgencyUrgent},
		{3, domain.UrgencyUrgent},
		{4, domain.UrgencySoon},
		{10, domain.UrgencySoon},
		{11, domain.UrgencyOpen},
		{400, domain.UrgencyOpen},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.Classify(recruitingIn(tt.days), now), "days=%d", tt.days)
	}
}

func TestClassify_NotRecruiting(t *testing.T) {
	c := domain.Club{Recruiting: false, RecruitEnd: strPtr("2026-03-11")}

	assert.Equal(t, domain.UrgencyNotRecruiting, domain.Classify(c, now))
}

func TestClassify_MissingDeadlineIsUnsetNotClosed(t *testing.T) {
	assert.Equal(t, domain.UrgencyUnset, domain.Classify(domain.Club{Recruiting: true}, now))
	assert.Equal(t, domain.UrgencyUnset, domain.Classify(domain.Club{Recruiting: true, RecruitEnd: strPtr("soon")}, now))
}

func TestClassify_UsesCurrentDate(t *testing.T) {
	c := recruitingIn(5)

	assert.Equal(t, domain.UrgencySoon, domain.Classify(c, now))
	assert.Equal(t, domain.UrgencyClosed, domain.Classify(c, now.AddDate(0, 0, 6)))
}

// ---- Badge / FormatDeadline / DaysLeft -----------------------------------------

func TestBadge(t *testing.T) {
	assert.Equal(t, "D-0", domain.Badge(recruitingIn(0), now))
	assert.Equal(t, "D-7", domain.Badge(recruitingIn(7), now))
	assert.Equal(t, "open", domain.Badge(recruitingIn(30), now))
	assert.Equal(t, "closed", domain.Badge(recruitingIn(-2), now))
	assert.Equal(t, "not recruiting", domain.Badge(domain.Club{}, now))
}

func TestFormatDeadline(t *testing.T) {
	assert.Equal(t, "not recruiting", domain.FormatDeadline(domain.Club{RecruitEnd: strPtr("2026-04-01")}))
	assert.Equal(t, "deadline unset", domain.FormatDeadline(domain.Club{Recruiting: true}))
	assert.Equal(t, "2026-04-01", domain.FormatDeadline(domain.Club{Recruiting: true, RecruitEnd: strPtr("2026-04-01")}))
}

func TestDaysLeft(t *testing.T) {
	got := domain.DaysLeft(recruitingIn(4), now)
	require.NotNil(t, got)
	assert.Equal(t, 4, *got)

	assert.Nil(t, domain.DaysLeft(domain.Club{Recruiting: true}, now))
	assert.Nil(t, domain.DaysLeft(domain.Club{RecruitEnd: strPtr("2026-04-01")}, now))
}
