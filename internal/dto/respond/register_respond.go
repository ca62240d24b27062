package respond

// RegisterRespond 用户注册响应
// 使用位置:
//   - internal/service/user/service.go: Register
type RegisterRespond struct {
	UserCreated bool `json:"userCreated"`
	Id          uint `json:"id"`
}
