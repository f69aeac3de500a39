package logger

import (
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

const bodyLimit = 1000

// SetupResty 为外部服务客户端挂载请求日志中间件
func SetupResty(client *resty.Client, upstream string) {
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		fields := []any{
			log.String("upstream", upstream),
			log.String("method", resp.Request.Method),
			log.String("url", resp.Request.URL),
			log.Int("status", resp.StatusCode()),
			log.Duration("latency", resp.Time()),
		}

		resStr := resp.String()
		if len(resStr) > bodyLimit {
			resStr = resStr[:bodyLimit] + "...[truncated]"
		}
		fields = append(fields, log.String("res_body", resStr))

		ctx := resp.Request.Context()
		if resp.IsError() {
			log.ErrorContext(ctx, "UPSTREAM_ERROR", fields...)
		} else if resp.Time() > 500*time.Millisecond {
			log.WarnContext(ctx, "UPSTREAM_SLOW", fields...)
		} else {
			log.InfoContext(ctx, "UPSTREAM_CALL", fields...)
		}
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		log.ErrorContext(req.Context(), "UPSTREAM_ERROR",
			log.String("upstream", upstream),
			log.String("method", req.Method),
			log.String("url", req.URL),
			log.Any("err", err),
		)
	})
}
