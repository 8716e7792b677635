package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/shapeshift-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen/shapeshift-gateway/internal/app"
	"github.com/jsamuelsen/shapeshift-gateway/internal/domain"
)

// ExchangeHandler handles the ShapeShift gateway endpoints.
type ExchangeHandler struct {
	service *app.ExchangeService
}

// NewExchangeHandler creates a new exchange handler.
func NewExchangeHandler(service *app.ExchangeService) *ExchangeHandler {
	return &ExchangeHandler{
		service: service,
	}
}

// pairParam splits the :pair path parameter into its coins.
func pairParam(c *gin.Context) (coin1, coin2 string, ok bool) {
	coin1, coin2, err := domain.SplitPair(c.Param("pair"))
	if err != nil {
		dto.HandleError(c, err)
		return "", "", false
	}

	return coin1, coin2, true
}

// GetRate handles GET /api/v1/rates/:pair
//
// @Summary Get the exchange rate of a pair
// @Tags market
// @Produce json
// @Param pair path string true "Pair, e.g. btc_eth"
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/rates/{pair} [get]
func (h *ExchangeHandler) GetRate(c *gin.Context) {
	coin1, coin2, ok := pairParam(c)
	if !ok {
		return
	}

	rate, err := h.service.GetRate(c.Request.Context(), coin1, coin2)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RateResponse{Pair: c.Param("pair"), Rate: rate})
}

// GetLimit handles GET /api/v1/limits/:pair
//
// @Summary Get the deposit limit of a pair
// @Tags market
// @Produce json
// @Param pair path string true "Pair, e.g. btc_eth"
// @Success 200 {object} dto.LimitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/limits/{pair} [get]
func (h *ExchangeHandler) GetLimit(c *gin.Context) {
	coin1, coin2, ok := pairParam(c)
	if !ok {
		return
	}

	limit, err := h.service.GetLimit(c.Request.Context(), coin1, coin2)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LimitResponse{Pair: c.Param("pair"), Limit: limit})
}

// ListMarkets handles GET /api/v1/markets
//
// @Summary List market data for every pair
// @Tags market
// @Produce json
// @Success 200 {array} dto.MarketPairResponse
// @Router /api/v1/markets [get]
func (h *ExchangeHandler) ListMarkets(c *gin.Context) {
	info, err := h.service.GetMarketInfo(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMarketInfoResponse(info))
}

// GetMarket handles GET /api/v1/markets/:pair
//
// @Summary Get market data for one pair
// @Tags market
// @Produce json
// @Param pair path string true "Pair, e.g. btc_eth"
// @Success 200 {object} dto.MarketPairResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/markets/{pair} [get]
func (h *ExchangeHandler) GetMarket(c *gin.Context) {
	coin1, coin2, ok := pairParam(c)
	if !ok {
		return
	}

	market, err := h.service.GetMarketPair(c.Request.Context(), coin1, coin2)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMarketPairResponse(market))
}

// GetQuote handles GET /api/v1/quotes/:pair
// Rate, limit and market data are fetched concurrently.
//
// @Summary Get a composite quote for one pair
// @Tags market
// @Produce json
// @Param pair path string true "Pair, e.g. btc_eth"
// @Success 200 {object} dto.QuoteResponse
// @Router /api/v1/quotes/{pair} [get]
func (h *ExchangeHandler) GetQuote(c *gin.Context) {
	coin1, coin2, ok := pairParam(c)
	if !ok {
		return
	}

	quote, err := h.service.GetQuote(c.Request.Context(), coin1, coin2)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// GetQuotes handles GET /api/v1/quotes?pairs=btc_eth,ltc_btc
// Each pair succeeds or fails on its own, so the response is always 200.
//
// @Summary Quote several pairs
// @Tags market
// @Produce json
// @Param pairs query string true "Comma-separated pairs"
// @Success 200 {array} dto.BatchQuoteItem
// @Router /api/v1/quotes [get]
func (h *ExchangeHandler) GetQuotes(c *gin.Context) {
	var query dto.QuotesQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	results := h.service.GetQuotes(c.Request.Context(), query.List())

	items := make([]dto.BatchQuoteItem, 0, len(results))
	for _, r := range results {
		item := dto.BatchQuoteItem{Pair: r.Pair}
		if r.Err != nil {
			_, resp := dto.MapError(r.Err)
			item.Error = &resp.Error
		} else {
			item.Quote = dto.NewQuoteResponse(r.Quote)
		}

		items = append(items, item)
	}

	c.JSON(http.StatusOK, items)
}

// GetRecentTransactions handles GET /api/v1/transactions/recent?max=
//
// @Summary List the most recent public shifts
// @Tags transactions
// @Produce json
// @Param max query int false "1 to 50, default 5"
// @Success 200 {array} dto.RecentTransactionResponse
// @Router /api/v1/transactions/recent [get]
func (h *ExchangeHandler) GetRecentTransactions(c *gin.Context) {
	var query dto.RecentTransactionsQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	txs, err := h.service.GetRecentTransactions(c.Request.Context(), query.GetMax())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRecentTransactionsResponse(txs))
}

// ListTransactions handles GET /api/v1/transactions?address=
// Lists shifts made with the configured API key.
//
// @Summary List shifts made with the gateway's API key
// @Tags transactions
// @Produce json
// @Param address query string false "Withdrawal address filter"
// @Success 200 {array} dto.TransactionResponse
// @Router /api/v1/transactions [get]
func (h *ExchangeHandler) ListTransactions(c *gin.Context) {
	var query dto.TransactionsQuery
	if err := dto.BindQueryAndValidate(c, &query); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	txs, err := h.service.ListTransactions(c.Request.Context(), query.Address)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionsResponse(txs))
}

// GetDepositStatus handles GET /api/v1/deposits/:address/status
//
// @Summary Get the status of the last deposit to an address
// @Tags deposits
// @Produce json
// @Param address path string true "Deposit address"
// @Success 200 {object} dto.TransactionStatusResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/deposits/{address}/status [get]
func (h *ExchangeHandler) GetDepositStatus(c *gin.Context) {
	status, err := h.service.GetTransactionStatus(c.Request.Context(), c.Param("address"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionStatusResponse(status))
}

// GetTimeRemaining handles GET /api/v1/deposits/:address/time-remaining
//
// @Summary Get the time left on a fixed-amount deposit address
// @Tags deposits
// @Produce json
// @Param address path string true "Deposit address"
// @Success 200 {object} dto.TimeRemainingResponse
// @Router /api/v1/deposits/{address}/time-remaining [get]
func (h *ExchangeHandler) GetTimeRemaining(c *gin.Context) {
	address := c.Param("address")

	remaining, err := h.service.GetTimeRemaining(c.Request.Context(), address)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TimeRemainingResponse{
		Address:          address,
		SecondsRemaining: int64(remaining / time.Second),
	})
}

// ListCoins handles GET /api/v1/coins
//
// @Summary List supported coins
// @Tags coins
// @Produce json
// @Success 200 {array} dto.CoinResponse
// @Router /api/v1/coins [get]
func (h *ExchangeHandler) ListCoins(c *gin.Context) {
	coins, err := h.service.GetSupportedCoins(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCoinsResponse(coins))
}

// ValidateAddress handles GET /api/v1/addresses/:coin/:address
// An invalid address is a 200 with isValid false.
//
// @Summary Validate a withdrawal address
// @Tags coins
// @Produce json
// @Param coin path string true "Coin symbol"
// @Param address path string true "Address"
// @Success 200 {object} dto.AddressValidationResponse
// @Router /api/v1/addresses/{coin}/{address} [get]
func (h *ExchangeHandler) ValidateAddress(c *gin.Context) {
	coin, address := c.Param("coin"), c.Param("address")

	result, err := h.service.ValidateAddress(c.Request.Context(), address, coin)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AddressValidationResponse{
		Address: address,
		Coin:    coin,
		IsValid: result.IsValid,
		Error:   result.Error,
	})
}

// CreateShift handles POST /api/v1/shifts
//
// @Summary Open a shift
// @Tags shifts
// @Accept json
// @Produce json
// @Param request body dto.ShiftRequest true "Shift"
// @Success 201 {object} dto.ShiftResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/shifts [post]
func (h *ExchangeHandler) CreateShift(c *gin.Context) {
	var req dto.ShiftRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	result, err := h.service.CreateShift(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewShiftResponse(result))
}

// CreateFixedAmountShift handles POST /api/v1/shifts/fixed
//
// @Summary Open a shift for an exact withdrawal amount
// @Tags shifts
// @Accept json
// @Produce json
// @Param request body dto.FixedAmountRequest true "Fixed-amount shift"
// @Success 201 {object} dto.FixedAmountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/shifts/fixed [post]
func (h *ExchangeHandler) CreateFixedAmountShift(c *gin.Context) {
	var req dto.FixedAmountRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	result, err := h.service.CreateFixedAmountShift(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewFixedAmountResponse(result))
}

// CancelShift handles POST /api/v1/shifts/cancel
//
// @Summary Cancel the pending shift on a deposit address
// @Tags shifts
// @Accept json
// @Produce json
// @Param request body dto.CancelRequest true "Deposit address"
// @Success 200 {object} dto.StatusResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/shifts/cancel [post]
func (h *ExchangeHandler) CancelShift(c *gin.Context) {
	var req dto.CancelRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	if err := h.service.CancelShift(c.Request.Context(), req.Address); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "cancelled"})
}

// RequestReceipt handles POST /api/v1/receipts
//
// @Summary Mail a receipt for a transaction
// @Tags shifts
// @Accept json
// @Produce json
// @Param request body dto.ReceiptRequest true "Receipt"
// @Success 202 {object} dto.StatusResponse
// @Router /api/v1/receipts [post]
func (h *ExchangeHandler) RequestReceipt(c *gin.Context) {
	var req dto.ReceiptRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	if err := h.service.RequestReceipt(c.Request.Context(), req.Email, req.TxID); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.StatusResponse{Status: "sent"})
}

// RegisterExchangeRoutes registers the exchange routes on the given router group.
func (h *ExchangeHandler) RegisterExchangeRoutes(rg *gin.RouterGroup) {
	rg.GET("/rates/:pair", h.GetRate)
	rg.GET("/limits/:pair", h.GetLimit)

	rg.GET("/markets", h.ListMarkets)
	rg.GET("/markets/:pair", h.GetMarket)

	rg.GET("/quotes", h.GetQuotes)
	rg.GET("/quotes/:pair", h.GetQuote)

	rg.GET("/transactions", h.ListTransactions)
	rg.GET("/transactions/recent", h.GetRecentTransactions)

	deposits := rg.Group("/deposits/:address")
	deposits.GET("/status", h.GetDepositStatus)
	deposits.GET("/time-remaining", h.GetTimeRemaining)

	rg.GET("/coins", h.ListCoins)
	rg.GET("/addresses/:coin/:address", h.ValidateAddress)

	shifts := rg.Group("/shifts")
	shifts.POST("", h.CreateShift)
	shifts.POST("/fixed", h.CreateFixedAmountShift)
	shifts.POST("/cancel", h.CancelShift)

	rg.POST("/receipts", h.RequestReceipt)
}
