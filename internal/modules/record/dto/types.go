package dto

// SummaryInput selects how many weeks to report and how long one work
// session is, in minutes.
type SummaryInput struct {
	Weeks          int
	MinutesPerUnit int
}

// SummaryOutput is the report table: a header row, a separator row, then
// one row per week, newest first.
type SummaryOutput struct {
	Title string
	Rows  [][]string
}
