package model

// Trade statuses
const (
	StatusPending  = "pending"
	StatusReview   = "review"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusPaid     = "paid"
)

// Payout methods
const (
	PayoutBank        = "bank"
	PayoutWallet      = "wallet"
	PayoutMobileMoney = "mobile_money"
)

const (
	DefaultPayoutCurrency = "NGN"

	// ReceivedStatus is reported to the submitter; the stored status is StatusPending.
	ReceivedStatus = "received"
)

var (
	Statuses      = []interface{}{StatusPending, StatusReview, StatusApproved, StatusRejected, StatusPaid}
	PayoutMethods = []interface{}{PayoutBank, PayoutWallet, PayoutMobileMoney}
)
