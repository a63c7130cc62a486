package wallet

import (
	"net/http"

	dto "lucky_wheel/internal/api/dto/wallet"
	"lucky_wheel/internal/converter"
	"lucky_wheel/internal/middleware"
	"lucky_wheel/internal/model"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/req"
	"lucky_wheel/pkg/resp"
)

type HandlerDeps struct {
	Serv service.TreasuryService
}

// Handler кошельки игроков и казна
type Handler struct {
	serv service.TreasuryService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	player, ok := middleware.PlayerFromContext(r.Context())
	if !ok {
		converter.WriteError(w, model.ErrUnauthorized)
		return
	}

	balance, err := h.serv.Balance(r.Context(), player)
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(player, balance))
}

// Deposit пополнение кошелька из фаусета
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	player, ok := middleware.PlayerFromContext(r.Context())
	if !ok {
		converter.WriteError(w, model.ErrUnauthorized)
		return
	}

	amount, ok := h.decodeAmount(w, r)
	if !ok {
		return
	}

	balance, err := h.serv.Deposit(r.Context(), player, amount)
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(player, balance))
}

func (h *Handler) HouseBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.serv.HouseBalance(r.Context())
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(model.HouseAccount, balance))
}

// Fund пополнение казны владельцем
func (h *Handler) Fund(w http.ResponseWriter, r *http.Request) {
	amount, ok := h.decodeAmount(w, r)
	if !ok {
		return
	}

	balance, err := h.serv.Fund(r.Context(), amount)
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBalanceResponse(model.HouseAccount, balance))
}

// Withdraw вывод из казны на кошелек владельца, "0" или пусто - все
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	owner, ok := middleware.PlayerFromContext(r.Context())
	if !ok {
		converter.WriteError(w, model.ErrUnauthorized)
		return
	}

	amount, ok := h.decodeAmount(w, r)
	if !ok {
		return
	}

	withdrawn, err := h.serv.Withdraw(r.Context(), owner, amount)
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	remaining, err := h.serv.HouseBalance(r.Context())
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWithdrawResponse(owner, withdrawn, remaining))
}

func (h *Handler) decodeAmount(w http.ResponseWriter, r *http.Request) (int64, bool) {
	payload, err := req.Decode[dto.AmountRequest](r.Body)
	if err != nil {
		converter.WriteBadRequest(w, err.Error())
		return 0, false
	}

	amount, err := converter.ParseAmount(payload.Amount)
	if err != nil {
		converter.WriteError(w, err)
		return 0, false
	}
	return amount, true
}
