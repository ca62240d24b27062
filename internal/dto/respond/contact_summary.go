package respond

// ContactSummary 搜索结果中的联系人摘要
// 使用位置:
//   - internal/service/contact/service.go: Search
type ContactSummary struct {
	Id        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}
