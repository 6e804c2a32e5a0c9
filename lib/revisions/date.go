package revisions

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// humanize.Year counts 360 days, revision ages use calendar years.
const ageYear = 365 * humanize.Day

// monthPlaceholder stands for the translated month name in date_format.
const monthPlaceholder = "{month}"

type ageUnit struct {
	below time.Duration
	size  time.Duration
	one   string
	many  string
}

var ageUnits = []ageUnit{
	{below: time.Hour, size: time.Minute, one: "age_min", many: "age_mins"},
	{below: humanize.Day, size: time.Hour, one: "age_hour", many: "age_hours"},
	{below: humanize.Week, size: humanize.Day, one: "age_day", many: "age_days"},
	{below: humanize.Month, size: humanize.Week, one: "age_week", many: "age_weeks"},
	{below: ageYear, size: humanize.Month, one: "age_month", many: "age_months"},
	{below: time.Duration(math.MaxInt64), size: ageYear, one: "age_year", many: "age_years"},
}

var dateStrings = map[string]string{
	"date_format": monthPlaceholder + " 2 @ 15:04",
	"date":        "%s ago (%s)",
	"age_min":     "1 min",
	"age_mins":    "%d mins",
	"age_hour":    "1 hour",
	"age_hours":   "%d hours",
	"age_day":     "1 day",
	"age_days":    "%d days",
	"age_week":    "1 week",
	"age_weeks":   "%d weeks",
	"age_month":   "1 month",
	"age_months":  "%d months",
	"age_year":    "1 year",
	"age_years":   "%d years",
	"month_1":     "Jan",
	"month_2":     "Feb",
	"month_3":     "Mar",
	"month_4":     "Apr",
	"month_5":     "May",
	"month_6":     "Jun",
	"month_7":     "Jul",
	"month_8":     "Aug",
	"month_9":     "Sep",
	"month_10":    "Oct",
	"month_11":    "Nov",
	"month_12":    "Dec",
}

// dateFormatter renders revision dates with the strings of one locale.
type dateFormatter struct {
	translate func(key string) string
}

func englishDates() dateFormatter {
	return dateFormatter{translate: func(key string) string { return dateStrings[key] }}
}

func (m *Manager) dateFormatter(locale string) dateFormatter {
	return dateFormatter{translate: func(key string) string { return m.translate(locale, key) }}
}

// age rounds the distance to the nearest unit, never below one.
func (f dateFormatter) age(modified time.Time, now time.Time) string {
	diff := now.Sub(modified)
	if diff < 0 {
		diff = -diff
	}

	for _, unit := range ageUnits {
		if diff >= unit.below {
			continue
		}
		n := int(math.Round(float64(diff) / float64(unit.size)))
		if n <= 1 {
			return f.translate(unit.one)
		}
		return fmt.Sprintf(f.translate(unit.many), n)
	}
	return ""
}

func (f dateFormatter) absolute(modified time.Time) string {
	month := f.translate("month_" + strconv.Itoa(int(modified.Month())))
	return strings.ReplaceAll(modified.Format(f.translate("date_format")), monthPlaceholder, month)
}

func (f dateFormatter) format(modified time.Time, now time.Time) string {
	return fmt.Sprintf(f.translate("date"), f.age(modified, now), f.absolute(modified))
}

// FormatDate renders a revision timestamp relative to now in English, for
// example "5 mins ago (Mar 4 @ 10:15)".
func FormatDate(modified time.Time, now time.Time) string {
	return englishDates().format(modified, now)
}
