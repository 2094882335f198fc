package service

import (
	"math"

	"github.com/tgxchange/exchange-api/internal/core/domain"
)

// Pricing holds the configured inputs of the quote formula.
type Pricing struct {
	BaseRubPerUSD float64
	SpreadPct     float64
	FeeFixedRub   float64
}

// QuoteService converts an asset amount into RUB. It is a pure function of
// its configuration: no I/O, no hidden state.
type QuoteService struct {
	pricing Pricing
}

func NewQuoteService(pricing Pricing) *QuoteService {
	return &QuoteService{pricing: pricing}
}

// Quote returns the RUB amount (rounded to kopeks) and the effective RUB/USD
// rate (unrounded) for converting amount units of asset.
func (s *QuoteService) Quote(asset domain.Asset, amount float64) (rubAmount, rate float64, err error) {
	if !domain.IsSupportedAsset(asset) {
		return 0, 0, domain.ErrUnsupportedAsset
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, 0, domain.ErrInvalidAmount
	}

	usd := domain.ReferencePriceUSD[asset] * amount
	rate = s.pricing.BaseRubPerUSD * (1 + s.pricing.SpreadPct/100)

	rub := usd*rate - s.pricing.FeeFixedRub
	if rub < 0 {
		rub = 0
	}
	return math.Round(rub*100) / 100, rate, nil
}
