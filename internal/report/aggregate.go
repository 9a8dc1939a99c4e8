package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrEmptyDataset is returned when no clean records remain after validation.
// There is nothing meaningful to summarize and the chart cannot be drawn with
// zero categories, so the whole generation call fails.
var ErrEmptyDataset = errors.New("no valid registration records in dataset")

// Summary holds the headline statistics for one report generation.
type Summary struct {
	UniquePersons int
	Earliest      time.Time
	Latest        time.Time
	PeriodDays    int
	GeneratedAt   time.Time
}

// CourseCount pairs a course with its distinct-registrant count.
type CourseCount struct {
	Course string
	Count  int
}

// Entry is one deduplicated roster line for a course.
type Entry struct {
	FullName string
	Email    string
}

// Aggregation is the complete output of one aggregation pass. It is built
// once per generation call and only read afterwards.
type Aggregation struct {
	Summary Summary
	// Ranking is sorted by distinct registrant count descending. Ties keep
	// the order in which the courses first appear in the clean records; the
	// display order is part of the visible contract, so callers must not
	// re-sort it.
	Ranking []CourseCount
	Rosters map[string][]Entry
}

// Aggregate computes the summary statistics, the ranked per-course counts,
// and the per-course rosters from clean records. Counts are of distinct full
// names, not rows: a person with duplicate rows in a course is counted once
// for that course. Roster lines are deduplicated on the (name, email) pair in
// first-occurrence order.
func Aggregate(records []CleanRecord, now time.Time) (*Aggregation, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	persons := make(map[string]struct{})
	courseOrder := make([]string, 0)
	courseNames := make(map[string]map[string]struct{})
	rosters := make(map[string][]Entry)
	rosterSeen := make(map[string]map[Entry]struct{})

	earliest := records[0].RegisteredAt
	latest := records[0].RegisteredAt
	for _, r := range records {
		persons[r.FullName] = struct{}{}
		if r.RegisteredAt.Before(earliest) {
			earliest = r.RegisteredAt
		}
		if r.RegisteredAt.After(latest) {
			latest = r.RegisteredAt
		}

		names := courseNames[r.Course]
		if names == nil {
			names = make(map[string]struct{})
			courseNames[r.Course] = names
			rosterSeen[r.Course] = make(map[Entry]struct{})
			courseOrder = append(courseOrder, r.Course)
		}
		names[r.FullName] = struct{}{}

		e := Entry{FullName: r.FullName, Email: r.Email}
		if _, dup := rosterSeen[r.Course][e]; !dup {
			rosterSeen[r.Course][e] = struct{}{}
			rosters[r.Course] = append(rosters[r.Course], e)
		}
	}

	ranking := make([]CourseCount, 0, len(courseOrder))
	for _, c := range courseOrder {
		ranking = append(ranking, CourseCount{Course: c, Count: len(courseNames[c])})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})

	return &Aggregation{
		Summary: Summary{
			UniquePersons: len(persons),
			Earliest:      earliest,
			Latest:        latest,
			PeriodDays:    int(latest.Sub(earliest).Hours() / 24),
			GeneratedAt:   now,
		},
		Ranking: ranking,
		Rosters: rosters,
	}, nil
}

// Markdown renders a compact text summary of the aggregation, suitable for
// terminal output or attaching to a run log.
func (a *Aggregation) Markdown(rawRows, dropped int) string {
	var b strings.Builder
	b.WriteString("[REGISTRATION SUMMARY]\n")
	b.WriteString(fmt.Sprintf("Rows: %d (valid %d, dropped %d)\n", rawRows, rawRows-dropped, dropped))
	b.WriteString(fmt.Sprintf("Unique registrants: %d\n", a.Summary.UniquePersons))
	b.WriteString(fmt.Sprintf("Period: %s — %s (%d days)\n\n",
		a.Summary.Earliest.Format("2006-01-02 15:04"),
		a.Summary.Latest.Format("2006-01-02 15:04"),
		a.Summary.PeriodDays))

	b.WriteString("[COURSES]\n")
	for _, cc := range a.Ranking {
		b.WriteString(fmt.Sprintf("- %s: %d\n", cc.Course, cc.Count))
	}
	return b.String()
}
