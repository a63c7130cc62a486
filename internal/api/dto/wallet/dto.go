package wallet

type AmountRequest struct {
	Amount string `json:"amount"` // В эфирах
}

type BalanceResponse struct {
	Account string `json:"account"`
	Balance string `json:"balance"`
}

type WithdrawResponse struct {
	To        string `json:"to"`
	Amount    string `json:"amount"`
	Remaining string `json:"remaining"`
}
