package request

// DeleteContactRequest 删除联系人请求
// 使用位置:
//   - internal/handler/contact_handler.go: Delete
type DeleteContactRequest struct {
	UserId    uint `json:"userId" binding:"required"`
	ContactId uint `json:"contactId" binding:"required"`
}
