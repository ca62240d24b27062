package request

// UpdateContactRequest 更新联系人请求
// phone/email 使用指针：字段必须出现在请求体中，但允许为空字符串
// 使用位置:
//   - internal/handler/contact_handler.go: Update
//   - internal/service/contact/service.go: Update
type UpdateContactRequest struct {
	UserId    uint    `json:"userId" binding:"required"`
	ContactId uint    `json:"contactId" binding:"required"`
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Phone     *string `json:"phone" binding:"required"`
	Email     *string `json:"email" binding:"required"`
}
