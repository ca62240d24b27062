package request

// SearchContactsRequest 联系人搜索请求
// search/page/limit 均可省略；search 的长度上限在 Service 层校验
// 使用位置:
//   - internal/handler/contact_handler.go: Search
//   - internal/service/contact/service.go: Search
type SearchContactsRequest struct {
	UserId uint   `json:"userId" binding:"required"`
	Search string `json:"search"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}
