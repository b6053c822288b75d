package domain

import "fmt"

// MonthWindow returns the half-open calendar window [start, end) covering the
// given month as YYYY-MM-DD strings. December rolls the end boundary over to
// January 1 of the following year.
func MonthWindow(month, year int) (start, end string) {
	start = fmt.Sprintf("%04d-%02d-01", year, month)
	if month == 12 {
		end = fmt.Sprintf("%04d-01-01", year+1)
	} else {
		end = fmt.Sprintf("%04d-%02d-01", year, month+1)
	}
	return start, end
}
