package router

import "go.uber.org/fx"

var Module = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewSessionRouter),
	fx.Provide(NewCustomerRouter),
	fx.Provide(NewScanRouter),
	fx.Provide(NewKnowledgeBaseRouter),
	fx.Provide(NewAuditLogRouter),
	fx.Provide(NewStatisticsRouter),
	fx.Provide(NewSampleDataRouter),
)
