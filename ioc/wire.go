//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/careerhub/internal/article"
	"github.com/ecodeclub/careerhub/internal/assessment"
	"github.com/ecodeclub/careerhub/internal/marketing"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitEmailService)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		article.InitModule,
		assessment.InitModule,
		marketing.InitModule,
		initGinServer,
		initCronJobs,
		initConsumers)
	return new(App), nil
}
