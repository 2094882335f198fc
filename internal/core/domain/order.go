package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an exchange order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusReleased  OrderStatus = "released"
	StatusCancelled OrderStatus = "cancelled"
)

// nominalTransitions documents the intended state machine:
// pending → paid → released, with cancellation possible before release.
var nominalTransitions = map[OrderStatus][]OrderStatus{
	StatusPending: {StatusPaid, StatusCancelled},
	StatusPaid:    {StatusReleased, StatusCancelled},
}

// operatorTargets is the set of statuses an operator may assign.
var operatorTargets = map[OrderStatus]struct{}{
	StatusPaid:      {},
	StatusReleased:  {},
	StatusCancelled: {},
}

var ErrOrderNotFound = errors.New("order not found")
var ErrForbidden = errors.New("access forbidden")
var ErrUnauthorized = errors.New("unauthorized")
var ErrInvalidStatus = errors.New("invalid status")
var ErrUnsupportedAsset = errors.New("unsupported asset")
var ErrInvalidAmount = errors.New("invalid amount")
var ErrInvalidReceiveMethod = errors.New("invalid receive_method")
var ErrNoDepositAddress = errors.New("no address for asset")

// AssignableStatus reports whether s is a status an operator may set.
func AssignableStatus(s OrderStatus) bool {
	_, ok := operatorTargets[s]
	return ok
}

// CanTransition is the single transition policy for operator status changes.
// It only checks that the target is assignable: out-of-order moves (released
// → cancelled, for one) are accepted, matching the historical behaviour
// operators rely on. Tightening the policy to the nominal table is a one-line
// change: additionally consult nominalTransitions[from].
func CanTransition(from, to OrderStatus) bool {
	return AssignableStatus(to)
}

// Asset identifies a supported crypto instrument.
type Asset string

const (
	AssetUSDTBEP20 Asset = "USDT_BEP20"
	AssetUSDTTRC20 Asset = "USDT_TRC20"
	AssetBTC       Asset = "BTC"
	AssetETH       Asset = "ETH"
)

// ReferencePriceUSD is the static per-asset price table used for quoting.
var ReferencePriceUSD = map[Asset]float64{
	AssetUSDTBEP20: 1,
	AssetUSDTTRC20: 1,
	AssetBTC:       65000,
	AssetETH:       3000,
}

// IsSupportedAsset reports whether a is a member of the supported set.
func IsSupportedAsset(a Asset) bool {
	_, ok := ReferencePriceUSD[a]
	return ok
}

// ReceiveMethod is the client-selected RUB payout channel (informational).
type ReceiveMethod string

const (
	ReceiveTinkoff ReceiveMethod = "TINKOFF"
	ReceiveSber    ReceiveMethod = "SBER"
	ReceiveAlfa    ReceiveMethod = "ALFA"
	ReceiveCash    ReceiveMethod = "CASH"
)

var receiveMethods = map[ReceiveMethod]struct{}{
	ReceiveTinkoff: {},
	ReceiveSber:    {},
	ReceiveAlfa:    {},
	ReceiveCash:    {},
}

// IsValidReceiveMethod reports whether m names a known payout channel.
func IsValidReceiveMethod(m ReceiveMethod) bool {
	_, ok := receiveMethods[m]
	return ok
}

// Order is the core aggregate: a crypto-to-RUB conversion request.
// Amount, asset, address, rate and RubAmount are frozen at creation;
// only status/comment (operator) and txid (owner) mutate afterwards.
type Order struct {
	ID            string        `json:"id" bson:"_id"`
	UserID        int64         `json:"user_id" bson:"user_id"`
	Asset         Asset         `json:"asset" bson:"asset"`
	Amount        float64       `json:"amount" bson:"amount"`
	RubAmount     float64       `json:"rub_amount" bson:"rub_amount"`
	Rate          float64       `json:"rate" bson:"rate"`
	Status        OrderStatus   `json:"status" bson:"status"`
	Address       string        `json:"address" bson:"address"`
	Txid          string        `json:"txid,omitempty" bson:"txid,omitempty"`
	Comment       string        `json:"comment,omitempty" bson:"comment,omitempty"`
	ReceiveMethod ReceiveMethod `json:"receive_method,omitempty" bson:"receive_method,omitempty"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`
}
