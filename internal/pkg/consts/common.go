package consts

const (
	// TagFilterUser 与解析出的 Facebook 用户ID比较
	TagFilterUser = "user"
	// TagFilterPage 与查询的页面ID比较
	TagFilterPage = "page"
)

const (
	PlatformFacebook = "facebook"
)
