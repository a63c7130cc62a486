package auth

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dto "lucky_wheel/internal/api/dto/auth"
	"lucky_wheel/internal/repository/memory"
	authServ "lucky_wheel/internal/service/auth"
	"lucky_wheel/pkg/ethsig"
	"lucky_wheel/pkg/token"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

type jwtConfig struct{}

func (jwtConfig) AccessTokenSecretKey() []byte        { return secret }
func (jwtConfig) AccessTokenDuration() time.Duration  { return time.Minute }
func (jwtConfig) RefreshTokenDuration() time.Duration { return time.Hour }

func newRouter() chi.Router {
	logger, _ := test.NewNullLogger()
	h := NewHandler(HandlerDeps{
		Serv: authServ.NewAuthService(memory.NewTxManager(), memory.NewAuthRepository(), jwtConfig{}, "", logger),
	})

	r := chi.NewRouter()
	r.Route("/auth", func(rr chi.Router) {
		rr.Post("/nonce", h.Nonce)
		rr.Post("/login", h.Login)
		rr.Post("/refresh", h.Refresh)
		rr.Post("/logout", h.Logout)
	})
	return r
}

func post(r chi.Router, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestWalletLoginFlow(t *testing.T) {
	r := newRouter()
	key, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	addr := ethsig.AddressOf(key)

	rec := post(r, "/auth/nonce", `{"address":"`+strings.ToLower(addr)+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var nonce dto.NonceResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&nonce))
	assert.Contains(t, nonce.Message, nonce.Nonce)

	sig := "0x" + hex.EncodeToString(ethsig.Sign([]byte(nonce.Message), key))
	rec = post(r, "/auth/login", `{"address":"`+addr+`","signature":"`+sig+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var tok dto.TokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tok))
	claims, err := token.VerifyToken(tok.AccessToken, secret)
	require.NoError(t, err)
	assert.Equal(t, addr, claims.Subject)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)

	rec = post(r, "/auth/refresh", "", cookies...)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = post(r, "/auth/logout", "", cookies...)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = post(r, "/auth/refresh", "", cookies...)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginWithoutNonce(t *testing.T) {
	r := newRouter()

	rec := post(r, "/auth/login", `{"address":"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed","signature":"0x00"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNonceBadAddress(t *testing.T) {
	r := newRouter()

	rec := post(r, "/auth/nonce", `{"address":"0xabc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PLAYER")
}

func TestRefreshWithoutCookies(t *testing.T) {
	r := newRouter()

	rec := post(r, "/auth/refresh", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
