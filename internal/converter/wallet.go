package converter

import (
	"lucky_wheel/internal/api/dto/auth"
	"lucky_wheel/internal/api/dto/wallet"
	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/ether"
)

func ToBalanceResponse(account string, balance int64) wallet.BalanceResponse {
	return wallet.BalanceResponse{Account: account, Balance: ether.Format(balance)}
}

func ToWithdrawResponse(to string, amount, remaining int64) wallet.WithdrawResponse {
	return wallet.WithdrawResponse{
		To:        to,
		Amount:    ether.Format(amount),
		Remaining: ether.Format(remaining),
	}
}

func ToNonceResponse(n model.LoginNonce) auth.NonceResponse {
	return auth.NonceResponse{
		Nonce:     n.Nonce,
		Message:   n.Message(),
		ExpiresAt: n.ExpiresAt,
	}
}
