package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is everything one generation call returns: the finished document
// plus the statistics the caller displays independently of the binary.
type Result struct {
	// ReportID identifies this generation call in output filenames and logs.
	ReportID string
	// PDF is the complete document. The buffer is owned by the caller; the
	// pipeline keeps no reference to it.
	PDF     []byte
	Pages   int
	Summary Summary
	Ranking []CourseCount

	RawRows     int
	CleanRows   int
	DroppedRows int
}

// Generate runs the full pipeline: validate, aggregate, compose. Page 1 is
// the summary and chart; pages 2..N are one roster per course in ranking
// order. The call is a pure function of its inputs apart from the generation
// date and report ID, so callers may run generations for separate datasets in
// parallel.
func Generate(raw []RawRecord, opt Options) (*Result, error) {
	clean, dropped := Clean(raw)

	now := time.Now()
	if opt.Now != nil {
		now = opt.Now()
	}
	agg, err := Aggregate(clean, now)
	if err != nil {
		return nil, err
	}

	doc := newDocument(opt)
	doc.chartPage(agg)
	for _, cc := range agg.Ranking {
		doc.rosterPage(cc.Course, agg.Rosters[cc.Course])
	}

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return &Result{
		ReportID:    uuid.NewString(),
		PDF:         buf.Bytes(),
		Pages:       doc.pdf.PageCount(),
		Summary:     agg.Summary,
		Ranking:     agg.Ranking,
		RawRows:     len(raw),
		CleanRows:   len(clean),
		DroppedRows: dropped,
	}, nil
}
