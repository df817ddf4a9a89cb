package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sethgrid/pester"
	"github.com/ujwegh/keytoheart/internal/app/config"
	"github.com/ujwegh/keytoheart/internal/app/logger"
	"github.com/ujwegh/keytoheart/internal/app/phone"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const statusOK = "OK"

var ErrCallRejected = errors.New("sms.ru rejected the call request")

type (
	// CallClient asks the provider to call the customer; the last digits of the
	// calling number are the verification code.
	CallClient interface {
		RequestCallCode(ctx context.Context, phone string, clientIP string) (*CallCodeResponseDto, error)
	}
	SMSRuClientImpl struct {
		ServiceURL   string
		apiKey       string
		pesterClient *pester.Client
		rateLimiter  ratelimit.Limiter
	}
	//easyjson:json
	CallCodeResponseDto struct {
		Status     string      `json:"status"`
		StatusCode int         `json:"status_code"`
		StatusText string      `json:"status_text"`
		Code       json.Number `json:"code"`
		CallID     string      `json:"call_id"`
		Cost       float64     `json:"cost"`
		Balance    float64     `json:"balance"`
	}
	LoggingRoundTripper struct {
		Proxied http.RoundTripper
	}
)

func NewSMSRuClient(c config.AppConfig) *SMSRuClientImpl {
	rateLimiter := ratelimit.New(c.SMSRuMaxRequestsPerSecond)
	pesterClient := pester.New()

	pesterClient.Concurrency = 1
	pesterClient.MaxRetries = 0
	pesterClient.KeepLog = true
	pesterClient.Timeout = time.Duration(c.SMSRuRequestTimeoutSec) * time.Second
	pesterClient.RetryOnHTTP429 = false
	pesterClient.Transport = &LoggingRoundTripper{Proxied: http.DefaultTransport}

	return &SMSRuClientImpl{
		ServiceURL:   c.SMSRuAddress,
		apiKey:       c.SMSRuAPIKey,
		pesterClient: pesterClient,
		rateLimiter:  rateLimiter,
	}
}

func (sc *SMSRuClientImpl) RequestCallCode(ctx context.Context, p string, clientIP string) (*CallCodeResponseDto, error) {
	sc.rateLimiter.Take()

	query := url.Values{}
	query.Set("phone", phone.Digits(p))
	query.Set("api_id", sc.apiKey)
	query.Set("json", "1")
	if clientIP != "" {
		query.Set("ip", clientIP)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sc.ServiceURL+"/code/call?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	resp, err := sc.pesterClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: http status %d", ErrCallRejected, resp.StatusCode)
	}

	dto := &CallCodeResponseDto{}
	err = dto.UnmarshalJSON(body)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling response to DTO: %w", err)
	}
	if dto.Status != statusOK {
		return nil, fmt.Errorf("%w: %d %s", ErrCallRejected, dto.StatusCode, dto.StatusText)
	}
	if dto.Code == "" {
		return nil, fmt.Errorf("%w: empty code", ErrCallRejected)
	}
	return dto, nil
}

func (lrt *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	logRequest(r)
	response, err := lrt.Proxied.RoundTrip(r)
	if err != nil {
		logger.Log.Error("sms.ru request error", zap.Error(err))
		return nil, err
	}
	logResponse(response)
	return response, nil
}

// logResponse keeps the body readable for the caller and never logs the code itself.
func logResponse(response *http.Response) {
	bodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		logger.Log.Error("sms.ru response error", zap.Error(err))
		return
	}
	response.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	dto := CallCodeResponseDto{}
	if err := dto.UnmarshalJSON(bodyBytes); err != nil {
		logger.Log.Info("SMS.RU RESPONSE:",
			zap.Int("Status", response.StatusCode),
			zap.Int("Content-Length", len(bodyBytes)))
		return
	}
	logger.Log.Info("SMS.RU RESPONSE:",
		zap.Int("Status", response.StatusCode),
		zap.String("ApiStatus", dto.Status),
		zap.Int("ApiStatusCode", dto.StatusCode),
		zap.String("CallID", dto.CallID),
		zap.Float64("Cost", dto.Cost),
	)
}

func logRequest(r *http.Request) {
	masked := *r.URL
	query := masked.Query()
	if query.Has("api_id") {
		query.Set("api_id", "***")
	}
	masked.RawQuery = query.Encode()
	logger.Log.Info("SMS.RU REQUEST:",
		zap.String("Method", r.Method),
		zap.String("Path", masked.String()),
	)
}
