package treasury

import (
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/sirupsen/logrus"
)

type serv struct {
	walletRepo repository.WalletRepository
	txManager  trm.Manager
	maxDeposit int64
	logger     logrus.FieldLogger
}

// NewTreasuryService maxDeposit <= 0 снимает лимит пополнения
func NewTreasuryService(
	walletRepo repository.WalletRepository,
	txManager trm.Manager,
	maxDeposit int64,
	logger logrus.FieldLogger,
) service.TreasuryService {
	return &serv{
		walletRepo: walletRepo,
		txManager:  txManager,
		maxDeposit: maxDeposit,
		logger:     logger,
	}
}
