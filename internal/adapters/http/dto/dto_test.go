package dto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/shapeshift-gateway/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewErrorResponse(t *testing.T) {
	got := NewErrorResponse(ErrorCodeUnknownPair, "rate: Unknown pair")

	assert.Equal(t, &ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrorCodeUnknownPair,
			Message: "rate: Unknown pair",
		},
	}, got)
}

func TestNewErrorResponseWithDetails(t *testing.T) {
	details := map[string]string{"pair": "must look like coin1_coin2"}

	got := NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed", details)

	assert.Equal(t, ErrorCodeValidation, got.Error.Code)
	assert.Equal(t, details, got.Error.Details)
}

func TestWithTraceID(t *testing.T) {
	resp := NewErrorResponse(ErrorCodeInternal, "internal error")

	got := resp.WithTraceID("trace-123")

	assert.Equal(t, "trace-123", got.TraceID)
	assert.Same(t, resp, got)
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeBadRequest, http.StatusBadRequest},
		{ErrorCodeUnknownPair, http.StatusBadRequest},
		{ErrorCodeNotDepositAddress, http.StatusBadRequest},
		{ErrorCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{ErrorCodeUpstream, http.StatusBadGateway},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeTimeout, http.StatusGatewayTimeout},
		{ErrorCodeInternal, http.StatusInternalServerError},
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromCode(tt.code))
		})
	}
}

func TestCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid argument", domain.NewInvalidArgumentError("rate", "pair", "is required"), ErrorCodeValidation},
		{"unknown pair", domain.NewError(domain.KindUnknownPair, "rate", "Unknown pair"), ErrorCodeUnknownPair},
		{
			"not deposit address",
			domain.NewError(domain.KindNotDepositAddress, "txStat", "This address is NOT a ShapeShift deposit address. Do not send anything to it."),
			ErrorCodeNotDepositAddress,
		},
		{"no pending", domain.NewError(domain.KindNoPendingTransaction, "cancelpending", "Unable to find pending transaction"), ErrorCodeNotFound},
		{"no transaction", domain.NewError(domain.KindNoTransactionFound, "mail", "No transaction found."), ErrorCodeNotFound},
		{"out of bounds", domain.NewError(domain.KindOutOfBounds, "marketinfo", "no such pair"), ErrorCodeNotFound},
		{"not cancelled", domain.NewError(domain.KindTransactionNotCancelled, "cancelpending", "transaction not cancelled"), ErrorCodeConflict},
		{"api error", domain.NewError(domain.KindAPIError, "shift", "Invalid withdrawal address"), ErrorCodeUpstream},
		{"malformed", domain.NewError(domain.KindMalformedResponse, "rate", "missing field rate"), ErrorCodeUpstream},
		{"transport", domain.WrapError(domain.KindRequestFailed, "rate", "request failed", errors.New("connection refused")), ErrorCodeUnavailable},
		{"deadline", domain.WrapError(domain.KindRequestFailed, "rate", "request failed", context.DeadlineExceeded), ErrorCodeTimeout},
		{"wrapped domain error", fmt.Errorf("quote: %w", domain.NewError(domain.KindUnknownPair, "rate", "Unknown pair")), ErrorCodeUnknownPair},
		{"foreign error", errors.New("boom"), ErrorCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeFromError(tt.err))
		})
	}
}

func TestMapError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		status, resp := MapError(nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Nil(t, resp)
	})

	t.Run("domain error keeps its message", func(t *testing.T) {
		status, resp := MapError(domain.NewError(domain.KindUnknownPair, "rate", "Unknown pair"))
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "rate: Unknown pair", resp.Error.Message)
	})

	t.Run("internal error is not leaked", func(t *testing.T) {
		status, resp := MapError(errors.New("nil map write in handler"))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "an internal error occurred", resp.Error.Message)
	})
}

func TestGetTraceID(t *testing.T) {
	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x10},
		SpanID:  trace.SpanID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
	})

	tests := []struct {
		name         string
		setupContext func(*gin.Context)
		want         string
	}{
		{
			name: "trace ID in context",
			setupContext: func(c *gin.Context) {
				c.Set(ContextKeyTraceID, "context-trace-123")
			},
			want: "context-trace-123",
		},
		{
			name: "trace ID in header",
			setupContext: func(c *gin.Context) {
				c.Request.Header.Set("X-Request-ID", "header-trace-456")
			},
			want: "header-trace-456",
		},
		{
			name: "active span beats header",
			setupContext: func(c *gin.Context) {
				c.Request = c.Request.WithContext(trace.ContextWithSpanContext(c.Request.Context(), spanCtx))
				c.Request.Header.Set("X-Request-ID", "header-trace-456")
			},
			want: spanCtx.TraceID().String(),
		},
		{
			name: "trace ID in context takes precedence",
			setupContext: func(c *gin.Context) {
				c.Set(ContextKeyTraceID, "context-trace-123")
				c.Request.Header.Set("X-Request-ID", "header-trace-456")
			},
			want: "context-trace-123",
		},
		{
			name:         "no trace ID",
			setupContext: func(*gin.Context) {},
			want:         "",
		},
		{
			name: "trace ID in context but wrong type",
			setupContext: func(c *gin.Context) {
				c.Set(ContextKeyTraceID, 12345)
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			tt.setupContext(c)

			assert.Equal(t, tt.want, GetTraceID(c))
		})
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "unknown pair",
			err:         domain.NewError(domain.KindUnknownPair, "rate", "Unknown pair"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeUnknownPair,
			wantMessage: "Unknown pair",
		},
		{
			name:        "not cancelled",
			err:         domain.NewError(domain.KindTransactionNotCancelled, "cancelpending", "transaction not cancelled"),
			wantStatus:  http.StatusConflict,
			wantCode:    ErrorCodeConflict,
			wantMessage: "not cancelled",
		},
		{
			name:        "invalid argument",
			err:         domain.NewInvalidArgumentError("shift", "withdrawal", "is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrorCodeValidation,
			wantMessage: "withdrawal",
		},
		{
			name:        "upstream unreachable",
			err:         domain.WrapError(domain.KindRequestFailed, "getcoins", "request failed", errors.New("dial tcp: connection refused")),
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    ErrorCodeUnavailable,
			wantMessage: "request failed",
		},
		{
			name:        "internal error",
			err:         errors.New("unexpected error"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrorCodeInternal,
			wantMessage: "internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set(ContextKeyTraceID, "trace-abc")

			HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			assert.Equal(t, tt.wantCode, response.Error.Code)
			assert.Contains(t, response.Error.Message, tt.wantMessage)
			assert.Equal(t, "trace-abc", response.TraceID)
		})
	}
}

func TestRespondWithBindingError(t *testing.T) {
	type body struct {
		Pair string `json:"pair" validate:"required,pair"`
	}

	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantDetails bool
	}{
		{"field errors", Validate(&body{Pair: "btc"}), ErrorCodeValidation, true},
		{"business rule", fmt.Errorf("%w: %w", ErrValidation, ErrSamePair), ErrorCodeValidation, false},
		{"malformed body", fmt.Errorf("%w: unexpected EOF", ErrBinding), ErrorCodeBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

			RespondWithBindingError(c, tt.err)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.wantCode, response.Error.Code)
			assert.Equal(t, tt.wantDetails, len(response.Error.Details) > 0)
		})
	}
}

func TestRespondWithCode(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/nope", nil)
	c.Request.Header.Set("X-Request-ID", "req-1")

	RespondWithCode(c, ErrorCodeNotFound, "route not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","message":"route not found"},"traceId":"req-1"}`, w.Body.String())
}

func TestValidator(t *testing.T) {
	v1 := Validator()
	v2 := Validator()

	assert.NotNil(t, v1)
	assert.Same(t, v1, v2)
}

func TestValidate(t *testing.T) {
	type testStruct struct {
		Pair   string `json:"pair"   validate:"required,pair"`
		Coin   string `json:"coin"   validate:"omitempty,coin"`
		Amount string `json:"amount" validate:"omitempty,positive_decimal"`
		Email  string `json:"email"  validate:"omitempty,email"`
	}

	tests := []struct {
		name    string
		input   *testStruct
		wantErr bool
	}{
		{"valid", &testStruct{Pair: "btc_ltc", Coin: "BTC", Amount: "0.5", Email: "a@example.com"}, false},
		{"uppercase pair", &testStruct{Pair: "BTC_LTC"}, false},
		{"missing pair", &testStruct{}, true},
		{"pair without separator", &testStruct{Pair: "btcltc"}, true},
		{"pair with three parts", &testStruct{Pair: "btc_ltc_eth"}, true},
		{"pair with punctuation", &testStruct{Pair: "btc_lt-c"}, true},
		{"bad coin", &testStruct{Pair: "btc_ltc", Coin: "b t c"}, true},
		{"zero amount", &testStruct{Pair: "btc_ltc", Amount: "0"}, true},
		{"negative amount", &testStruct{Pair: "btc_ltc", Amount: "-1"}, true},
		{"non numeric amount", &testStruct{Pair: "btc_ltc", Amount: "lots"}, true},
		{"bad email", &testStruct{Pair: "btc_ltc", Email: "not-an-email"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateNotEmpty(t *testing.T) {
	type testStruct struct {
		Address string `json:"address" validate:"notempty"`
	}

	assert.NoError(t, Validate(&testStruct{Address: "1abc"}))
	assert.Error(t, Validate(&testStruct{Address: ""}))
	assert.Error(t, Validate(&testStruct{Address: "   "}))
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"valid", `{"withdrawal":"0xabc","pair":"btc_eth"}`, nil},
		{"invalid JSON", `{invalid}`, ErrBinding},
		{"missing withdrawal", `{"pair":"btc_eth"}`, ErrValidation},
		{"invalid pair", `{"withdrawal":"0xabc","pair":"btc"}`, ErrValidation},
		{"same coin twice", `{"withdrawal":"0xabc","pair":"btc_BTC"}`, ErrSamePair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var input ShiftRequest
			err := BindAndValidate(c, &input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "0xabc", input.Withdrawal)
		})
	}
}

func TestBindQueryAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantMax int
		wantErr bool
	}{
		{"default", "", DefaultRecentMax, false},
		{"explicit", "?max=10", 10, false},
		{"upper bound", "?max=50", 50, false},
		{"above bound", "?max=51", 0, true},
		{"negative", "?max=-1", 0, true},
		{"not a number", "?max=lots", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/transactions/recent"+tt.query, nil)

			var query RecentTransactionsQuery
			err := BindQueryAndValidate(c, &query)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMax, query.GetMax())
		})
	}
}

func TestValidationErrors(t *testing.T) {
	err := Validate(&ReceiptRequest{Email: "nope"})
	require.Error(t, err)

	got := ValidationErrors(err)
	assert.Equal(t, map[string]string{
		"email": "must be a valid email address",
		"txid":  "this field is required",
	}, got)

	assert.Empty(t, ValidationErrors(errors.New("some error")))
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(Validate(&CancelRequest{})))
	assert.False(t, IsValidationError(errors.New("some error")))
	assert.False(t, IsValidationError(nil))
}

func TestValidationMessage(t *testing.T) {
	tests := []struct {
		name  string
		input any
		field string
		want  string
	}{
		{"pair", &ShiftRequest{Withdrawal: "x", Pair: "btc"}, "pair", "must look like coin1_coin2"},
		{"positive decimal", &FixedAmountRequest{ShiftRequest: ShiftRequest{Withdrawal: "x", Pair: "btc_eth"}, Amount: "0"}, "amount", "must be a positive decimal number"},
		{"numeric max", &RecentTransactionsQuery{Max: 99}, "max", "must be at most 50"},
		{"numeric min", &struct {
			Max int `json:"max" validate:"min=1"`
		}{}, "max", "must be at least 1"},
		{"string min", &struct {
			Name string `json:"name" validate:"min=3"`
		}{Name: "ab"}, "name", "must be at least 3 characters"},
		{"unknown tag", &struct {
			Name string `json:"name" validate:"alpha"`
		}{Name: "123"}, "name", "failed validation: alpha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			require.Error(t, err)

			assert.Equal(t, tt.want, ValidationErrors(err)[tt.field])
		})
	}
}

func TestValidateAll(t *testing.T) {
	t.Run("tags fail first", func(t *testing.T) {
		err := ValidateAll(&ShiftRequest{Pair: "btc_btc"})
		require.ErrorIs(t, err, ErrValidation)
		assert.NotErrorIs(t, err, ErrSamePair)
	})

	t.Run("custom rule", func(t *testing.T) {
		err := ValidateAll(&ShiftRequest{Withdrawal: "x", Pair: "btc_btc"})
		require.ErrorIs(t, err, ErrValidation)
		require.ErrorIs(t, err, ErrSamePair)
	})

	t.Run("custom rule is promoted through embedding", func(t *testing.T) {
		err := ValidateAll(&FixedAmountRequest{
			ShiftRequest: ShiftRequest{Withdrawal: "x", Pair: "eth_ETH"},
			Amount:       "1",
		})
		require.ErrorIs(t, err, ErrSamePair)
	})

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateAll(&ShiftRequest{Withdrawal: "x", Pair: "btc_eth"}))
	})
}
