//go:build wireinject

package answer

import (
	"github.com/ecodeclub/mockmate/internal/ai"
	"github.com/ecodeclub/mockmate/internal/answer/internal/event"
	"github.com/ecodeclub/mockmate/internal/answer/internal/repository"
	"github.com/ecodeclub/mockmate/internal/answer/internal/service"
	"github.com/ecodeclub/mockmate/internal/answer/internal/web"
	"github.com/ecodeclub/mockmate/internal/interview"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, aiModule *ai.Module, itvModule *interview.Module) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewAnswerRepository,
		newInterviewQuestions,
		initAIClient,
		initSpeechEngine,
		service.NewSessionManager,
		initSNGenerator,
		event.NewAnswerEventProducer,
		service.NewService,
		web.NewHandler,
		initSweepJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
