package request

// LogoutRequest 登出请求
// 使用位置:
//   - internal/handler/user_handler.go: Logout
type LogoutRequest struct {
	UserId uint `json:"userId" binding:"required"`
}
