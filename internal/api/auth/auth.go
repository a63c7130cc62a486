package auth

import (
	"net/http"

	dto "lucky_wheel/internal/api/dto/auth"
	"lucky_wheel/internal/converter"
	"lucky_wheel/internal/model"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/req"
	"lucky_wheel/pkg/resp"
)

const (
	sessionIDCookie    = "session_id"
	refreshTokenCookie = "refresh_token"
	cookieMaxAge       = 60 * 60 * 24 * 30 // 30 дней
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Nonce выдает сообщение, которое кошелек должен подписать
func (h *Handler) Nonce(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.NonceRequest](r.Body)
	if err != nil {
		converter.WriteBadRequest(w, "invalid request")
		return
	}

	nonce, err := h.serv.Nonce(r.Context(), requestBody.Address)
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToNonceResponse(*nonce))
}

// Login проверяет подпись, открывает сессию
// и возвращает access_token, а session_id и refresh_token через cookies
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		converter.WriteBadRequest(w, "invalid request")
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Address, requestBody.Signature)
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	setSessionIDCookie(w, data.SessionID)
	setRefreshTokenCookie(w, data.RefreshToken)

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: data.AccessToken})
}

// Refresh выдает новый access_token по session_id и refresh_token
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionID, err := r.Cookie(sessionIDCookie)
	if err != nil {
		converter.WriteError(w, model.ErrUnauthorized)
		return
	}
	refreshToken, err := r.Cookie(refreshTokenCookie)
	if err != nil {
		converter.WriteError(w, model.ErrUnauthorized)
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), sessionID.Value, refreshToken.Value)
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: accessToken})
}

// Logout закрывает сессию по session_id
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionIDCookie)
	if err != nil {
		converter.WriteError(w, model.ErrUnauthorized)
		return
	}

	err = h.serv.Logout(r.Context(), c.Value)
	if err != nil {
		converter.WriteError(w, err)
		return
	}

	deleteCookie(w, sessionIDCookie, "/")
	deleteCookie(w, refreshTokenCookie, "/auth")

	w.WriteHeader(http.StatusNoContent)
}

// setRefreshTokenCookie refresh_token нужен только эндпоинтам /auth
func setRefreshTokenCookie(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    refreshToken,
		Path:     "/auth",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   cookieMaxAge,
	})
}

func setSessionIDCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionIDCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   cookieMaxAge,
	})
}

func deleteCookie(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
