package sms

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const RouteSendSMS = "/api/message/sms/send"

// Константы минимального и максимально значения в заголовке Retry-After.
const (
	minRetryAfter     = 1
	maxRetryAfter     = 120
	defaultRetryAfter = 60
)

// HTTPClient отправляет сообщения через HTTP API SMS шлюза.
type HTTPClient struct {
	baseURL    string
	token      string
	from       string
	httpClient *http.Client
}

func New(baseURL, token, from string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		from:       from,
		httpClient: &http.Client{Timeout: 10 * time.Second}, //nolint:mnd
	}
}

// Send отправляет сообщение message на номер phone.
// При ответе шлюза со статусом отличным от http.StatusOK возвращает ошибку StatusCodeError, или
// TooManyRequestError в случае http.StatusTooManyRequests.
//
//nolint:nonamedreturns
func (c *HTTPClient) Send(ctx context.Context, phone, message string) (err error) {
	form := url.Values{}
	form.Set("mobile_phone", phone)
	form.Set("message", message)
	if c.from != "" {
		form.Set("from", c.from)
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+RouteSendSMS,
		strings.NewReader(form.Encode()))
	if reqErr != nil {
		return errors.Wrap(reqErr, "create request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return errors.Wrap(doErr, "do request")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close response body")
		}
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusTooManyRequests:
		return NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	default:
		return NewStatusCodeError(resp.StatusCode)
	}
}

func parseRetryAfter(value string) time.Duration {
	minValue := decimal.NewFromInt(minRetryAfter)
	maxValue := decimal.NewFromInt(maxRetryAfter)

	retryAfter, parseErr := decimal.NewFromString(value)
	if parseErr != nil || retryAfter.LessThan(minValue) || retryAfter.GreaterThan(maxValue) {
		// в случае ошибки или неверных данных ставим значение по умолчанию
		retryAfter = decimal.NewFromInt(defaultRetryAfter)
	}
	return time.Duration(retryAfter.IntPart()) * time.Second
}
