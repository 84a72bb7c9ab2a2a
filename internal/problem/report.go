package problem

import "time"

// Section is the outcome of one operation. Value holds a scalar result,
// Matrix a rectangular result, Note a negative outcome or skip reason.
type Section struct {
	Op     string
	Value  string
	Matrix [][]string
	Note   string
}

// Report collects the sections produced for one problem.
type Report struct {
	Name     string
	Field    string
	Rows     int
	Cols     int
	Sections []Section
	Elapsed  time.Duration
}

// Section returns the first section for op.
func (r *Report) Section(op string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Op == op {
			return s, true
		}
	}

	return Section{}, false
}
