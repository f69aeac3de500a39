package facebook

// TaggedPost Graph API tagged 端点的单条结果
type TaggedPost struct {
	ID         string `json:"id"`
	Message    string `json:"message"`
	TaggedTime string `json:"tagged_time"`
}

// TaggedPostList tagged 端点响应体
type TaggedPostList struct {
	Data []TaggedPost `json:"data"`
}

type MediaImage struct {
	Height int    `json:"height"`
	Src    string `json:"src"`
	Width  int    `json:"width"`
}

type AttachmentMedia struct {
	Image MediaImage `json:"image"`
}

type AttachmentTarget struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type PostAttachment struct {
	Description string           `json:"description"`
	Media       AttachmentMedia  `json:"media"`
	Target      AttachmentTarget `json:"target"`
	Type        string           `json:"type"`
	URL         string           `json:"url"`
}

type PostAttachments struct {
	Data []PostAttachment `json:"data"`
}

// PostAuthor 帖子作者
type PostAuthor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PostMetadata 帖子详情
type PostMetadata struct {
	ID           string          `json:"id"`
	Message      string          `json:"message"`
	PermalinkURL string          `json:"permalink_url"`
	CreatedTime  string          `json:"created_time"`
	From         PostAuthor      `json:"from"`
	Attachments  PostAttachments `json:"attachments"`
}
