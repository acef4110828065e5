package service

import "math"

// TotalPages returns ceil(count/limit) with a floor of 1, so an empty result
// set still reports one (empty) page. limit must be >= 1.
func TotalPages(count, limit int) int {
	if limit < 1 {
		return 1
	}
	pages := (count + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}

// Offset returns the number of rows to skip for a 1-based page. It saturates
// at math.MaxInt instead of wrapping when (page-1)*limit does not fit an int.
func Offset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}
