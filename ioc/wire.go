//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/mockmate/internal/ai"
	"github.com/ecodeclub/mockmate/internal/answer"
	"github.com/ecodeclub/mockmate/internal/interview"
	"github.com/ecodeclub/mockmate/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		ai.InitModule,
		interview.InitModule,
		answer.InitModule,
		user.InitHandler,
		InitSession,
		initGinxServer,
		InitAdminServer,
		initMQConsumers,
		initCronJobs,
	)
	return new(App), nil
}
