package domain

import (
	"math"
	"strconv"
	"time"
)

// Weekdays in bucket order, Monday first. Every week entry carries all
// seven keys once created.
var Weekdays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Week maps a 3-letter weekday to accumulated work minutes.
type Week map[string]int

// Store maps a week's Monday (YYYY-MM-DD) to that week's minutes.
type Store map[string]Week

// AddWorkMinutes returns a copy of store with minutes added to
// (weekKey, dayKey). An absent week is seeded with all seven days at zero
// first. The input store is never mutated.
func AddWorkMinutes(store Store, weekKey, dayKey string, minutes int) Store {
	next := make(Store, len(store)+1)
	for monday, week := range store {
		copied := make(Week, len(week))
		for day, m := range week {
			copied[day] = m
		}
		next[monday] = copied
	}
	if _, ok := next[weekKey]; !ok {
		seeded := make(Week, len(Weekdays))
		for _, day := range Weekdays {
			seeded[day] = 0
		}
		next[weekKey] = seeded
	}
	next[weekKey][dayKey] += minutes
	return next
}

// MondayOf returns the ISO date of the Monday of the week weeksBack weeks
// before the week containing t.
func MondayOf(t time.Time, weeksBack int) string {
	monday := t.AddDate(0, 0, -(WeekdayIndex(t) + weeksBack*7))
	return monday.Format("2006-01-02")
}

// WeekdayIndex maps t's weekday to 0..6 with Monday as 0.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DayKey is the Mon..Sun bucket key for t.
func DayKey(t time.Time) string {
	return Weekdays[WeekdayIndex(t)]
}

// WeekSummary renders one report row: the first numDays day values
// expressed in minutesPerUnit units (one decimal), blank cells for the
// rest of the week, then the average of the populated values. An absent
// week yields eight empty cells.
func WeekSummary(store Store, weekKey string, numDays, minutesPerUnit int) []string {
	week, ok := store[weekKey]
	if !ok {
		return make([]string, len(Weekdays)+1)
	}
	row := make([]string, 0, len(Weekdays)+1)
	sum := 0.0
	for _, day := range Weekdays[:numDays] {
		units := round1(float64(week[day]) / float64(minutesPerUnit))
		sum += units
		row = append(row, formatUnits(units))
	}
	for range Weekdays[numDays:] {
		row = append(row, "")
	}
	return append(row, formatUnits(round1(sum/float64(numDays))))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func formatUnits(x float64) string {
	return strconv.FormatFloat(x, 'f', 1, 64)
}
