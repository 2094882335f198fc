package handler

import "github.com/tgxchange/exchange-api/internal/core/domain"

// --- Domain → HTTP response ---

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		Asset:         string(o.Asset),
		Amount:        o.Amount,
		RubAmount:     o.RubAmount,
		Rate:          o.Rate,
		Status:        string(o.Status),
		Address:       o.Address,
		Txid:          o.Txid,
		Comment:       o.Comment,
		ReceiveMethod: string(o.ReceiveMethod),
		CreatedAt:     o.CreatedAt.UTC(),
		UpdatedAt:     o.UpdatedAt.UTC(),
	}
}

func toOrderListResponse(orders []*domain.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}

func toCreateResponse(o *domain.Order) createOrderResponse {
	return createOrderResponse{
		OrderID:       o.ID,
		Status:        string(o.Status),
		Address:       o.Address,
		RubAmount:     o.RubAmount,
		Rate:          o.Rate,
		ReceiveMethod: string(o.ReceiveMethod),
	}
}
