package service

import (
	"errors"
	"math"
	"testing"

	"github.com/tgxchange/exchange-api/internal/core/domain"
)

func defaultPricing() Pricing {
	return Pricing{BaseRubPerUSD: 95, SpreadPct: 1, FeeFixedRub: 0}
}

func TestQuote_BTCExample(t *testing.T) {
	svc := NewQuoteService(defaultPricing())

	rub, rate, err := svc.Quote(domain.AssetBTC, 0.01)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 0.01 BTC = 650 USD; 650 * 95 * 1.01 = 62367.50
	if rub != 62367.50 {
		t.Errorf("rub_amount: want 62367.50, got %v", rub)
	}
	if rate != 95.95 {
		t.Errorf("rate: want 95.95, got %v", rate)
	}
}

func TestQuote_Stablecoins(t *testing.T) {
	svc := NewQuoteService(defaultPricing())

	for _, asset := range []domain.Asset{domain.AssetUSDTBEP20, domain.AssetUSDTTRC20} {
		rub, _, err := svc.Quote(asset, 100)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", asset, err)
		}
		if rub != 9595.00 {
			t.Errorf("%s: want 9595.00, got %v", asset, rub)
		}
	}
}

func TestQuote_Deterministic(t *testing.T) {
	svc := NewQuoteService(defaultPricing())

	r1, rate1, _ := svc.Quote(domain.AssetETH, 1.5)
	r2, rate2, _ := svc.Quote(domain.AssetETH, 1.5)
	if r1 != r2 || rate1 != rate2 {
		t.Errorf("identical inputs must yield identical outputs: (%v,%v) vs (%v,%v)", r1, rate1, r2, rate2)
	}
}

func TestQuote_FeeClampsToZero(t *testing.T) {
	svc := NewQuoteService(Pricing{BaseRubPerUSD: 95, SpreadPct: 1, FeeFixedRub: 1_000_000})

	rub, _, err := svc.Quote(domain.AssetUSDTTRC20, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rub != 0 {
		t.Errorf("fee exceeding value must clamp rub_amount to 0, got %v", rub)
	}
}

func TestQuote_FixedFeeApplied(t *testing.T) {
	svc := NewQuoteService(Pricing{BaseRubPerUSD: 100, SpreadPct: 0, FeeFixedRub: 50})

	rub, rate, err := svc.Quote(domain.AssetUSDTBEP20, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rub != 950.00 {
		t.Errorf("want 950.00, got %v", rub)
	}
	if rate != 100 {
		t.Errorf("rate: want 100, got %v", rate)
	}
}

func TestQuote_UnsupportedAsset(t *testing.T) {
	svc := NewQuoteService(defaultPricing())

	_, _, err := svc.Quote("DOGE", 1)
	if !errors.Is(err, domain.ErrUnsupportedAsset) {
		t.Errorf("want ErrUnsupportedAsset, got %v", err)
	}
}

func TestQuote_InvalidAmount(t *testing.T) {
	svc := NewQuoteService(defaultPricing())

	for _, amount := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, _, err := svc.Quote(domain.AssetBTC, amount)
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("amount %v: want ErrInvalidAmount, got %v", amount, err)
		}
	}
}
