package respond

// LoginRespond 用户登录响应
// 使用位置:
//   - internal/service/user/service.go: Login
type LoginRespond struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	UserId          uint   `json:"userId"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	AccessToken     string `json:"accessToken"`
	RefreshToken    string `json:"refreshToken"`
}
