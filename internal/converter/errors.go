package converter

import (
	"net/http"

	"lucky_wheel/internal/model"
	"lucky_wheel/pkg/resp"
)

var statusByCode = map[string]int{
	"INCORRECT_FEE":       http.StatusBadRequest,
	"NOT_OWNER":           http.StatusForbidden,
	"ALREADY_CLAIMED":     http.StatusConflict,
	"NOTHING_TO_CLAIM":    http.StatusConflict,
	"DISBURSEMENT_FAILED": http.StatusServiceUnavailable,
	"INVALID_PLAYER":      http.StatusBadRequest,
	"SPIN_NOT_FOUND":      http.StatusNotFound,
	"INSUFFICIENT_FUNDS":  http.StatusPaymentRequired,
	"INVALID_AMOUNT":      http.StatusBadRequest,
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"FORBIDDEN":           http.StatusForbidden,
	"RATE_LIMITED":        http.StatusTooManyRequests,
}

// HTTPStatus статус ответа для ошибки сервиса
func HTTPStatus(err error) int {
	if status, ok := statusByCode[model.ErrorCode(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError пишет ошибку сервиса клиенту. Текст внутренних ошибок наружу не отдается
func WriteError(w http.ResponseWriter, err error) {
	code := model.ErrorCode(err)
	message := err.Error()
	if code == model.CodeInternal {
		message = "internal error"
	}
	resp.WriteError(w, HTTPStatus(err), code, message)
}

// WriteBadRequest ошибка разбора тела или параметров запроса
func WriteBadRequest(w http.ResponseWriter, message string) {
	resp.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", message)
}
