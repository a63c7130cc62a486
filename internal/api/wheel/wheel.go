package wheel

import (
	"math"
	"net/http"
	"strconv"

	dto "lucky_wheel/internal/api/dto/wheel"
	"lucky_wheel/internal/converter"
	"lucky_wheel/internal/middleware"
	"lucky_wheel/internal/model"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/req"
	"lucky_wheel/pkg/resp"

	"github.com/go-chi/chi/v5"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type HandlerDeps struct {
	Serv        service.WheelService
	Leaderboard service.LeaderboardService
}

type Handler struct {
	serv        service.WheelService
	leaderboard service.LeaderboardService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, leaderboard: deps.Leaderboard}
}

// Spin вращение колеса за взнос игрока из токена
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	player, ok := middleware.PlayerFromContext(r.Context())
	if !ok {
		converter.WriteError(w, model.ErrUnauthorized)
		return
	}

	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		converter.WriteBadRequest(w, err.Error())
		return
	}

	spinReq, err := converter.ToSpinRequest(player, payload)
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	spin, err := h.serv.Spin(r.Context(), spinReq)
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*spin))
}

// Claim выплата приза по id спина
func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	player, ok := middleware.PlayerFromContext(r.Context())
	if !ok {
		converter.WriteError(w, model.ErrUnauthorized)
		return
	}

	spinID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		converter.WriteBadRequest(w, "invalid spin id")
		return
	}

	result, err := h.serv.Claim(r.Context(), model.ClaimRequest{Player: player, SpinID: spinID})
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToClaimResponse(*result))
}

func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	info, err := h.serv.Info(r.Context())
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToInfoResponse(*info))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats(r.Context())))
}

// PlayerSpins история спинов игрока, ?page=1&page_size=10
func (h *Handler) PlayerSpins(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil || page < 1 {
		converter.WriteBadRequest(w, "invalid page")
		return
	}
	pageSize, err := queryInt(r, "page_size", defaultPageSize)
	if err != nil || pageSize < 1 {
		converter.WriteBadRequest(w, "invalid page_size")
		return
	}
	pageSize = min(pageSize, maxPageSize)
	// смещение должно помещаться в int32
	if page-1 > math.MaxInt32/pageSize {
		converter.WriteBadRequest(w, "invalid page")
		return
	}

	player := chi.URLParam(r, "address")
	spins, err := h.serv.PlayerSpins(r.Context(), player, model.Page{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinHistoryResponse(player, page, pageSize, *spins))
}

func (h *Handler) PlayerWinnings(w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "address")
	total, err := h.serv.PlayerTotalWinnings(r.Context(), player)
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWinningsResponse(player, total))
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil || limit < 0 {
		converter.WriteBadRequest(w, "invalid limit")
		return
	}

	winners, err := h.leaderboard.Top(r.Context(), limit)
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardResponse(winners))
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
