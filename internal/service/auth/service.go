package auth

import (
	"time"

	"lucky_wheel/internal/config"
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// nonceTTL время, за которое кошелек должен подписать сообщение
const nonceTTL = 5 * time.Minute

type serv struct {
	txManager trm.Manager
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig
	owner     string
	logger    logrus.FieldLogger
	now       func() time.Time
}

// NewAuthService owner - адрес владельца казны, пустой адрес никому не дает роль owner
func NewAuthService(
	txManager trm.Manager,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
	owner string,
	logger logrus.FieldLogger,
) service.AuthService {
	return &serv{
		txManager: txManager,
		authRepo:  authRepo,
		jwtConfig: jwtConfig,
		owner:     owner,
		logger:    logger,
		now:       time.Now,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
