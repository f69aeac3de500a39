package customerapi

import (
	"EcoLoyalty/internal/api/config"
	"EcoLoyalty/internal/pkg/logger"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// API 客户积分服务客户端接口
type API interface {
	GetCustomerIDByEmail(ctx context.Context, email string) (string, error)
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	AdjustPoints(ctx context.Context, id string, delta int, reason string) (*PointsBalance, error)
}

type Client struct {
	httpClient *resty.Client
}

func NewClient(cfg *config.CustomerAPIConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Choreo-API-Key", cfg.ApiKey)

	logger.SetupResty(client, "customer_api")

	return &Client{httpClient: client}
}

// GetCustomerIDByEmail 按邮箱查询客户，返回第一条匹配的客户ID，未找到返回空串
func (s *Client) GetCustomerIDByEmail(ctx context.Context, email string) (string, error) {
	var result CustomerList
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParam("emailAddress", email).
		SetResult(&result).
		Get("/customers")
	if err != nil {
		return "", fmt.Errorf("lookup customer: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("lookup customer: customer api returned %d", resp.StatusCode())
	}
	if len(result.Customers) == 0 {
		return "", nil
	}
	return result.Customers[0].CustomerID, nil
}

// GetCustomer 按客户ID查询积分档案
func (s *Client) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	var result Customer
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/customers/" + id)
	if err != nil {
		return nil, fmt.Errorf("fetch customer: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch customer: customer api returned %d", resp.StatusCode())
	}
	return &result, nil
}

// AdjustPoints 调整客户积分并返回最新余额
func (s *Client) AdjustPoints(ctx context.Context, id string, delta int, reason string) (*PointsBalance, error) {
	var result PointsBalance
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(&PointsAdjustment{PointsDelta: delta, Reason: reason}).
		SetResult(&result).
		Post(fmt.Sprintf("/customers/%s/points", id))
	if err != nil {
		return nil, fmt.Errorf("adjust points: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("adjust points: customer api returned %d", resp.StatusCode())
	}
	return &result, nil
}
