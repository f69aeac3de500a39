package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrIdentityMissing    = errors.New("未登录或网关身份缺失")
	ErrMappingNotFound    = errors.New("未找到该邮箱绑定的 Facebook 账号")
	ErrCustomerNotFound   = errors.New("客户不存在")
	ErrPostNotEligible    = errors.New("帖子不符合领取条件")
	ErrPostAlreadyClaimed = errors.New("该帖子的积分已领取")
	ErrClaimInProgress    = errors.New("领取正在处理中，请稍后重试")
	ErrRewardNotFound     = errors.New("奖励不存在")
	ErrRewardOutOfStock   = errors.New("奖励已兑完")
	ErrPointsInsufficient = errors.New("积分不足")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrIdentityMissing:    Unauthorized,
	ErrMappingNotFound:    NotFound,
	ErrCustomerNotFound:   NotFound,
	ErrPostNotEligible:    BadRequest,
	ErrPostAlreadyClaimed: BadRequest,
	ErrClaimInProgress:    BadRequest,
	ErrRewardNotFound:     NotFound,
	ErrRewardOutOfStock:   BadRequest,
	ErrPointsInsufficient: BadRequest,
	UnExpectedError:       InternalServerError,
}
