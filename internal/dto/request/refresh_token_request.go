package request

// RefreshTokenRequest 刷新 Access Token 请求
// 使用位置:
//   - internal/handler/user_handler.go: Refresh
//   - internal/service/user/service.go: RefreshToken
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
