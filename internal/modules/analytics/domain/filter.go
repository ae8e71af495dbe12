package domain

import "time"

// FilterVisitor query for the visitor report, paging only. The report is
// never narrowed by caller supplied criteria, so nothing else is parseable
// from the query string.
type FilterVisitor struct {
	Page   int `json:"page" default:"1"`
	Limit  int `json:"limit" default:"20"`
	Offset int `json:"-"`
}

// CalculateOffset method
func (f *FilterVisitor) CalculateOffset() int {
	f.Offset = (f.Page - 1) * f.Limit
	return f.Offset
}

// FilterVisitorCount criteria for counting visitor records, built internally
// by the usecases and never bound from a request.
type FilterVisitorCount struct {
	IPAddress   string
	IsReturning *bool
	Since       time.Time
}

// FilterStatistic model. Timeframe stays a string so that non numeric
// input falls back to the default window instead of failing the request.
type FilterStatistic struct {
	Timeframe string `json:"timeframe"`
}
