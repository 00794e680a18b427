package reportquery

// Offset returns the row offset for the current page
func (q Query) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// TotalPages computes ceil(totalCount / pageSize)
func TotalPages(totalCount, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
