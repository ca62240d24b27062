package request

// AddContactRequest 新增联系人请求
// firstName/lastName 去除首尾空白后仍须非空（Service 层校验）
// 使用位置:
//   - internal/handler/contact_handler.go: Add
//   - internal/service/contact/service.go: Add
type AddContactRequest struct {
	UserId    uint   `json:"userId" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}
