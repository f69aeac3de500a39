package facebook

import (
	"EcoLoyalty/internal/api/config"
	"EcoLoyalty/internal/pkg/logger"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// postMetadataFields 详情接口拉取的字段
const postMetadataFields = "message,permalink_url,created_time,from,attachments"

// API Graph API 客户端接口
type API interface {
	GetTaggedPosts(ctx context.Context, pageID string) ([]TaggedPost, error)
	GetPostMetadata(ctx context.Context, postID string) (*PostMetadata, error)
}

type Client struct {
	httpClient *resty.Client
}

// NewClient 初始化 Graph API 客户端，页面令牌附加到每次请求
func NewClient(cfg *config.FacebookConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.GraphURL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetQueryParam("access_token", cfg.PageToken)

	logger.SetupResty(client, "facebook")

	return &Client{httpClient: client}
}

// GetTaggedPosts 拉取页面下被标记的帖子列表
func (s *Client) GetTaggedPosts(ctx context.Context, pageID string) ([]TaggedPost, error) {
	var result TaggedPostList
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/%s/tagged", pageID))
	if err != nil {
		return nil, fmt.Errorf("fetch tagged posts: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch tagged posts: graph api returned %d", resp.StatusCode())
	}
	return result.Data, nil
}

// GetPostMetadata 拉取单条帖子的详情
func (s *Client) GetPostMetadata(ctx context.Context, postID string) (*PostMetadata, error) {
	var result PostMetadata
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParam("fields", postMetadataFields).
		SetResult(&result).
		Get("/" + postID)
	if err != nil {
		return nil, fmt.Errorf("fetch post metadata: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch post metadata: graph api returned %d", resp.StatusCode())
	}
	return &result, nil
}
