package services

import (
	"os"

	"github.com/l3montree-dev/vulify/shared"
	"github.com/l3montree-dev/vulify/utils"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(NewCustomerService, fx.As(new(shared.CustomerService))),
		fx.Annotate(NewScanService, fx.As(new(shared.ScanService))),
		fx.Annotate(NewAuditRecorder, fx.As(new(shared.AuditRecorder))),
	),
	fx.Provide(NewStatisticsService),
	fx.Provide(NewSampleDataService),
	fx.Provide(
		fx.Annotate(func() *mailClient {
			return NewMailClient(os.Getenv("MAIL_WEBHOOK_URL"), utils.EmptyThenNil(os.Getenv("MAIL_WEBHOOK_SECRET")))
		}, fx.As(new(shared.MailSender))),
	),
)
