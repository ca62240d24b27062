package constants

const (
	EVENT_CHANNEL_SIZE         = 100 // 事件通道大小
	DEFAULT_PAGE_SIZE          = 10  // 搜索默认每页条数
	MAX_PAGE_SIZE              = 100 // 搜索每页条数上限
	SEARCH_TERM_MAX_LEN        = 100 // 搜索词最大长度（字符）
	REFRESH_TOKEN_EXPIRY_HOURS = 168 // Refresh Token 有效期（小时），168小时 = 7天
)
