package respond

// Pagination 分页元信息
// hasNextPage 由"多取一行"探测得出，totalCount/totalPages 来自独立的 COUNT 查询
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	HasNextPage bool  `json:"hasNextPage"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int64 `json:"totalPages"`
}
