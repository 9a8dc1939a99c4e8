package report

import (
	"fmt"
	"strconv"
)

// chartPage renders page 1: the general-information header block followed by
// the ranked bar chart. All statistics come from the aggregation; nothing is
// recomputed here.
func (d *document) chartPage(agg *Aggregation) {
	lb := d.opt.Labels
	pdf := d.pdf
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 14, d.tr(lb.ReportTitle), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	s := agg.Summary
	lines := []string{
		fmt.Sprintf(lb.TotalRegistrants, s.UniquePersons),
		fmt.Sprintf(lb.FirstRegistration, s.Earliest.Format(d.opt.DateTimeFormat)),
		fmt.Sprintf(lb.LastRegistration, s.Latest.Format(d.opt.DateTimeFormat)),
		fmt.Sprintf(lb.Period, s.PeriodDays),
	}

	// Info panel on a light blue ground.
	pdf.SetFillColor(222, 235, 247)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, d.tr(lb.GeneralInfo), "", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, ln := range lines {
		pdf.CellFormat(0, 7, d.tr(ln), "", 1, "L", true, 0, "")
	}
	pdf.CellFormat(0, 4, "", "", 1, "L", true, 0, "")
	pdf.CellFormat(0, 7, d.tr(fmt.Sprintf(lb.GeneratedOn, s.GeneratedAt.Format(d.opt.DateFormat))), "", 1, "L", true, 0, "")
	pdf.CellFormat(0, 7, d.tr(lb.Attribution), "", 1, "L", true, 0, "")

	d.barChart(agg.Ranking)
}

// barChart draws one bar per course in ranking order, highest count on the
// left. The order is the aggregator's; it is never re-sorted here.
func (d *document) barChart(ranking []CourseCount) {
	pdf := d.pdf
	lb := d.opt.Labels
	pageW, pageH := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, d.tr(lb.ChartTitle), "", 1, "C", false, 0, "")

	// Plot frame. The band below the x-axis is reserved for the rotated
	// course labels and the axis caption.
	plotX := left + 12
	plotW := pageW - right - plotX
	plotTop := pdf.GetY() + 4
	plotBottom := pageH - 48
	plotH := plotBottom - plotTop

	maxCount := ranking[0].Count // ranking is sorted descending
	// 10% headroom above the tallest bar; never zero-height for positive
	// counts.
	yMax := float64(maxCount) * 1.1

	// Horizontal gridlines with integer tick labels.
	step := maxCount / 5
	if step < 1 {
		step = 1
	}
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.2)
	for v := 0; float64(v) <= yMax; v += step {
		y := plotBottom - float64(v)/yMax*plotH
		pdf.Line(plotX, y, plotX+plotW, y)
		tick := strconv.Itoa(v)
		pdf.Text(plotX-1.5-pdf.GetStringWidth(tick), y+1.2, tick)
	}

	slot := plotW / float64(len(ranking))
	barW := slot * 0.7
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	for i, cc := range ranking {
		col := barPalette[i%len(barPalette)]
		pdf.SetFillColor(col[0], col[1], col[2])
		h := float64(cc.Count) / yMax * plotH
		x := plotX + float64(i)*slot + (slot-barW)/2
		pdf.Rect(x, plotBottom-h, barW, h, "FD")

		// Exact count just above the bar.
		pdf.SetFont("Helvetica", "B", 10)
		count := strconv.Itoa(cc.Count)
		pdf.Text(x+barW/2-pdf.GetStringWidth(count)/2, plotBottom-h-1.5, count)

		// Course name below the bar, rotated and right-anchored at the tick
		// so long names slope away instead of colliding; never truncated.
		pdf.SetFont("Helvetica", "", 9)
		name := d.tr(cc.Course)
		anchorX := x + barW/2
		anchorY := plotBottom + 4
		pdf.TransformBegin()
		pdf.TransformRotate(45, anchorX, anchorY)
		pdf.Text(anchorX-pdf.GetStringWidth(name), anchorY, name)
		pdf.TransformEnd()
	}

	// Axes over the gridlines.
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Line(plotX, plotBottom, plotX+plotW, plotBottom)
	pdf.Line(plotX, plotTop, plotX, plotBottom)

	pdf.SetFont("Helvetica", "B", 11)
	xCap := d.tr(lb.ChartXAxis)
	pdf.Text(plotX+plotW/2-pdf.GetStringWidth(xCap)/2, pageH-10, xCap)
	yCap := d.tr(lb.ChartYAxis)
	pdf.TransformBegin()
	pdf.TransformRotate(90, left+3, plotTop+plotH/2)
	pdf.Text(left+3-pdf.GetStringWidth(yCap)/2, plotTop+plotH/2, yCap)
	pdf.TransformEnd()
}
