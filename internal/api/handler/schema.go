package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createOrderRequest struct {
	Asset         string  `json:"asset"          validate:"required"`
	Amount        float64 `json:"amount"         validate:"required,gt=0"`
	Txid          string  `json:"txid"`
	ReceiveMethod string  `json:"receive_method"`
}

type setStatusRequest struct {
	Status  string `json:"status" validate:"required"`
	Comment string `json:"comment"`
}

// setTxidRequest carries the new transaction reference; an empty value clears it.
type setTxidRequest struct {
	Txid string `json:"txid"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type meResponse struct {
	ID        int64             `json:"id"`
	Role      string            `json:"role"`
	Addresses map[string]string `json:"addresses"`
}

type quoteResponse struct {
	RubAmount float64 `json:"rub_amount"`
	Rate      float64 `json:"rate"`
}

type createOrderResponse struct {
	OrderID       string  `json:"order_id"`
	Status        string  `json:"status"`
	Address       string  `json:"address"`
	RubAmount     float64 `json:"rub_amount"`
	Rate          float64 `json:"rate"`
	ReceiveMethod string  `json:"receive_method,omitempty"`
}

type orderResponse struct {
	ID            string    `json:"id"`
	UserID        int64     `json:"user_id"`
	Asset         string    `json:"asset"`
	Amount        float64   `json:"amount"`
	RubAmount     float64   `json:"rub_amount"`
	Rate          float64   `json:"rate"`
	Status        string    `json:"status"`
	Address       string    `json:"address"`
	Txid          string    `json:"txid,omitempty"`
	Comment       string    `json:"comment,omitempty"`
	ReceiveMethod string    `json:"receive_method,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ackResponse struct {
	OK bool `json:"ok"`
}
