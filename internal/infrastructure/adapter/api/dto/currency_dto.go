package dto

import "time"

// ConvertResponse is an amount converted between currencies
type ConvertResponse struct {
	Amount          string `json:"amount"`
	From            string `json:"from"`
	To              string `json:"to"`
	ConvertedAmount string `json:"convertedAmount"`
	ExchangeRate    string `json:"exchangeRate"`
}

// RatesResponse is the rate table in use
type RatesResponse struct {
	Base      string            `json:"base"`
	Rates     map[string]string `json:"rates"`
	FetchedAt time.Time         `json:"fetchedAt"`
	Fallback  bool              `json:"fallback"`
}
