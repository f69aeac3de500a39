package scoreapi

import (
	"EcoLoyalty/internal/api/config"
	"EcoLoyalty/internal/pkg/logger"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// API 内容打分服务客户端接口
type API interface {
	Analyze(ctx context.Context, content *ContentData) (*ScoreResponse, error)
}

type Client struct {
	httpClient *resty.Client
}

func NewClient(cfg *config.ScoreAPIConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Choreo-API-Key", cfg.ApiKey)

	logger.SetupResty(client, "score_api")

	return &Client{httpClient: client}
}

// Analyze 提交单条内容获取相关性分数
func (s *Client) Analyze(ctx context.Context, content *ContentData) (*ScoreResponse, error) {
	var result ScoreResponse
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(content).
		SetResult(&result).
		Post("/analyze")
	if err != nil {
		return nil, fmt.Errorf("analyze content: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("analyze content: score api returned %d", resp.StatusCode())
	}
	return &result, nil
}
