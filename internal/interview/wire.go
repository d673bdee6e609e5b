//go:build wireinject

package interview

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mockmate/internal/ai"
	"github.com/ecodeclub/mockmate/internal/interview/internal/event"
	"github.com/ecodeclub/mockmate/internal/interview/internal/repository"
	"github.com/ecodeclub/mockmate/internal/interview/internal/repository/cache"
	"github.com/ecodeclub/mockmate/internal/interview/internal/service"
	"github.com/ecodeclub/mockmate/internal/interview/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, aiModule *ai.Module) (*Module, error) {
	wire.Build(
		initDAO,
		cache.NewInterviewECache,
		repository.NewCachedInterviewRepository,
		initQuestionGenerator,
		service.NewInterviewService,
		web.NewHandler,
		event.NewAnswerEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
