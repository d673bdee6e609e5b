//go:build wireinject

package ai

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mockmate/internal/ai/internal/repository"
	"github.com/ecodeclub/mockmate/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler/biz"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler/record"
	"github.com/ecodeclub/mockmate/internal/ai/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		InitConfigDAO,
		InitLLMRecordDAO,
		cache.NewConfigCache,
		InitDefaultConfigs,
		repository.NewCachedConfigRepository,
		repository.NewLLMRecordRepository,

		log.NewHandler,
		config.NewBuilder,
		InitMetricsBuilder,
		record.NewHandler,
		InitCommonHandlers,
		InitPlatformRouter,
		InitHandlerFacade,
		wire.Bind(new(handler.Handler), new(*biz.FacadeHandler)),

		llm.NewLLMService,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
