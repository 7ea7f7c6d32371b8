package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	coreport "github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/core"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/domain/port/usecase"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/dto"
	"github.com/johnjerry8749/Affiliate-Academy-sub000/internal/infrastructure/adapter/api/middleware"
	"github.com/shopspring/decimal"
)

// CurrencyHandler handles exchange-rate HTTP requests
type CurrencyHandler struct {
	converter usecase.CurrencyConverter
	logger    coreport.Logger
}

// NewCurrencyHandler creates a new currency handler instance
func NewCurrencyHandler(converter usecase.CurrencyConverter, logger coreport.Logger) *CurrencyHandler {
	return &CurrencyHandler{
		converter: converter,
		logger:    logger,
	}
}

// Convert handles the GET /api/currency/convert endpoint
func (h *CurrencyHandler) Convert(c *gin.Context) {
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		middleware.AbortBadRequest(c, "Invalid amount: must be a decimal number")
		return
	}

	from := strings.ToUpper(strings.TrimSpace(c.Query("from")))
	to := strings.ToUpper(strings.TrimSpace(c.Query("to")))
	if len(from) != 3 || len(to) != 3 {
		middleware.AbortBadRequest(c, "Invalid currency: from and to must be 3-letter codes")
		return
	}

	conversion := h.converter.Convert(c.Request.Context(), amount, from, to)

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:          amount.String(),
		From:            from,
		To:              to,
		ConvertedAmount: conversion.ConvertedAmount.StringFixed(2),
		ExchangeRate:    conversion.ExchangeRate.String(),
	})
}

// Rates handles the GET /api/currency/rates endpoint
func (h *CurrencyHandler) Rates(c *gin.Context) {
	snapshot := h.converter.Rates(c.Request.Context())

	rates := make(map[string]string, len(snapshot.Rates))
	for code, rate := range snapshot.Rates {
		rates[code] = rate.String()
	}

	c.JSON(http.StatusOK, dto.RatesResponse{
		Base:      snapshot.Base,
		Rates:     rates,
		FetchedAt: snapshot.FetchedAt,
		Fallback:  snapshot.Fallback,
	})
}
