package pagination

// TotalPages calculates the number of pages needed for total items at the
// given limit. Uses ceiling division; an empty result set still counts as
// one page.
//
// Examples:
//   - Total 0, Limit 100 -> 1 page
//   - Total 100, Limit 100 -> 1 page
//   - Total 101, Limit 100 -> 2 pages
func TotalPages(total int64, limit int) int {
	if total == 0 || limit <= 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
