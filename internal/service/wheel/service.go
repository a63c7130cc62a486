package wheel

import (
	"time"

	"lucky_wheel/internal/notify"
	"lucky_wheel/internal/random"
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/service"
	servModel "lucky_wheel/internal/service/wheel/model"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/sirupsen/logrus"
)

type serv struct {
	paytable   servModel.Paytable
	ledgerRepo repository.LedgerRepository
	statsRepo  repository.StatsRepository
	treasury   service.TreasuryService
	source     random.Source
	notifier   notify.Notifier
	txManager  trm.Manager
	logger     logrus.FieldLogger
	now        func() time.Time
}

type Deps struct {
	Paytable   servModel.Paytable
	LedgerRepo repository.LedgerRepository
	StatsRepo  repository.StatsRepository
	Treasury   service.TreasuryService
	Source     random.Source
	Notifier   notify.Notifier
	TxManager  trm.Manager
	Logger     logrus.FieldLogger
}

// NewWheelService Создать колесо. Таблица выплат должна пройти Validate
func NewWheelService(deps Deps) service.WheelService {
	return &serv{
		paytable:   deps.Paytable,
		ledgerRepo: deps.LedgerRepo,
		statsRepo:  deps.StatsRepo,
		treasury:   deps.Treasury,
		source:     deps.Source,
		notifier:   deps.Notifier,
		txManager:  deps.TxManager,
		logger:     deps.Logger,
		now:        time.Now,
	}
}
