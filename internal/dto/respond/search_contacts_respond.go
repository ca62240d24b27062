package respond

// SearchContactsRespond 联系人搜索响应
// 使用位置:
//   - internal/service/contact/service.go: Search
type SearchContactsRespond struct {
	Results    []ContactSummary `json:"results"`
	Pagination Pagination       `json:"pagination"`
}
