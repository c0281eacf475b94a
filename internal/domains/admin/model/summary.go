package model

// SummaryResponse holds the document count of every collection.
type SummaryResponse struct {
	Users         int64 `json:"users"`
	Giftcards     int64 `json:"giftcards"`
	Rates         int64 `json:"rates"`
	Trades        int64 `json:"trades"`
	PendingTrades int64 `json:"pending_trades"`
}
