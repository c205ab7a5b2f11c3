// Package modem はModem AgentのHTTP APIクライアントを提供する。
package modem

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"github.com/snvd-io/platform-frameworks-opt-telephony-sub001/internal/config"
)

// Client はModem Agentクライアントの実装
type Client struct {
	httpClient *resty.Client
	cb         *gobreaker.CircuitBreaker
	baseURL    string
}

// NewClient は新しいModem Agentクライアントを生成する。
func NewClient(cfg *config.Config) *Client {
	httpClient := resty.New().
		SetTimeout(config.ModemRequestTimeout)

	cbSettings := gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					"event_id", "CB_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					"event_id", "CB_HALF_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					"event_id", "CB_CLOSE",
					"cb_name", name,
				)
			}
		},
	}

	return &Client{
		httpClient: httpClient,
		cb:         gobreaker.NewCircuitBreaker(cbSettings),
		baseURL:    strings.TrimRight(cfg.ModemAPIURL, "/"),
	}
}

// SetN1Mode は指定スロットのN1モード（NR SA許可）を設定する。
func (c *Client) SetN1Mode(ctx context.Context, slot int, allowed bool) error {
	url := fmt.Sprintf("%s/api/v1/slots/%d/n1-mode", c.baseURL, slot)
	_, err := c.execute(ctx, func(traceID string) (*resty.Response, error) {
		return c.httpClient.R().
			SetContext(ctx).
			SetHeader(HeaderTraceID, traceID).
			SetHeader(HeaderContentType, ContentTypeJSON).
			SetBody(&n1ModeRequest{Allowed: allowed}).
			Put(url)
	})
	return err
}

// QueryVonr は指定スロットのVoNR有効状態を取得する。
func (c *Client) QueryVonr(ctx context.Context, slot int) (bool, error) {
	url := fmt.Sprintf("%s/api/v1/slots/%d/vonr", c.baseURL, slot)
	body, err := c.execute(ctx, func(traceID string) (*resty.Response, error) {
		return c.httpClient.R().
			SetContext(ctx).
			SetHeader(HeaderTraceID, traceID).
			Get(url)
	})
	if err != nil {
		return false, err
	}

	var raw vonrResponseJSON
	if err := json.Unmarshal(body, &raw); err != nil {
		return false, fmt.Errorf("%w: json unmarshal: %v", ErrInvalidResponse, err)
	}
	return raw.Enabled, nil
}

// execute はCircuit Breaker経由でHTTPリクエストを実行し、レスポンスボディを返す。
func (c *Client) execute(ctx context.Context, do func(traceID string) (*resty.Response, error)) ([]byte, error) {
	traceID := uuid.NewString()
	start := time.Now()

	result, err := c.cb.Execute(func() (any, error) {
		resp, err := do(traceID)
		if err != nil {
			return nil, &ConnectionError{Cause: err}
		}

		latencyMs := time.Since(start).Milliseconds()
		statusCode := resp.StatusCode()

		// CB失敗判定対象: 5xx（501除く）
		if statusCode >= 500 && statusCode != 501 {
			apiErr := c.parseAPIError(statusCode, resp.Body())
			slog.Error("modem api error",
				"event_id", "MODEM_API_ERR",
				"trace_id", traceID,
				"error", apiErr.Error(),
				"http_status", statusCode,
				"latency_ms", latencyMs,
			)
			return nil, apiErr
		}

		// CB失敗判定対象外のエラー: 400, 404, 501
		if statusCode != 200 {
			apiErr := c.parseAPIError(statusCode, resp.Body())
			slog.Error("modem api error",
				"event_id", "MODEM_API_ERR",
				"trace_id", traceID,
				"error", apiErr.Error(),
				"http_status", statusCode,
				"latency_ms", latencyMs,
			)
			// CB対象外エラーはnilを返してCBカウントに含めない
			return apiErr, nil
		}

		slog.Debug("modem api success",
			"trace_id", traceID,
			"latency_ms", latencyMs,
		)

		return resp.Body(), nil
	})

	if err != nil {
		// Circuit BreakerがOpen状態
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, ErrCircuitOpen
		}
		// ConnectionErrorまたはAPIError（CB対象）をそのまま返す
		return nil, err
	}

	// CB対象外のAPIErrorの場合
	if apiErr, ok := result.(*APIError); ok {
		return nil, apiErr
	}

	body, ok := result.([]byte)
	if !ok {
		return nil, ErrInvalidResponse
	}
	return body, nil
}

// parseAPIError はHTTPエラーレスポンスをAPIErrorに変換する。
func (c *Client) parseAPIError(statusCode int, body []byte) *APIError {
	var details ProblemDetails
	if err := json.Unmarshal(body, &details); err == nil && details.Title != "" {
		return &APIError{
			StatusCode: statusCode,
			Message:    details.Title,
			Details:    &details,
		}
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    string(body),
	}
}
