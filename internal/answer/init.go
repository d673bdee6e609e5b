// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package answer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ecodeclub/mockmate/internal/ai"
	"github.com/ecodeclub/mockmate/internal/answer/internal/domain"
	"github.com/ecodeclub/mockmate/internal/answer/internal/job"
	"github.com/ecodeclub/mockmate/internal/answer/internal/repository/dao"
	"github.com/ecodeclub/mockmate/internal/answer/internal/service"
	"github.com/ecodeclub/mockmate/internal/interview"
	"github.com/ecodeclub/mockmate/internal/pkg/sngenerator"
	"github.com/ecodeclub/mockmate/internal/pkg/speech"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

const defaultIdleTimeout = 30 * time.Minute

var initOnce sync.Once

func initDAO(db *egorm.Component) dao.AnswerDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMAnswerDAO(db)
}

func initAIClient(aiModule *ai.Module) service.AIClient {
	// 没有配置的时候使用默认的超时时间
	return service.NewLLMClient(aiModule.Svc, econf.GetDuration("answer.aiTimeout"))
}

func initSpeechEngine() service.SpeechEngine {
	return speech.NewPushEngine()
}

func initSNGenerator() service.SNGenerator {
	return sngenerator.NewGenerator()
}

func initSweepJob(svc service.Service) *job.SweepIdleSessionsJob {
	ttl := econf.GetDuration("answer.idleTimeout")
	if ttl <= 0 {
		ttl = defaultIdleTimeout
	}
	return job.NewSweepIdleSessionsJob(svc, ttl)
}

// interviewQuestions 从面试模块读取题目
type interviewQuestions struct {
	svc interview.Service
}

func newInterviewQuestions(itvModule *interview.Module) service.QuestionSource {
	return &interviewQuestions{svc: itvModule.Svc}
}

func (q *interviewQuestions) Question(ctx context.Context, uid, interviewID int64, idx int) (domain.Question, error) {
	res, err := q.svc.Question(ctx, uid, interviewID, idx)
	switch {
	case errors.Is(err, interview.ErrQuestionNotFound):
		return domain.Question{}, service.ErrQuestionNotFound
	case err != nil:
		return domain.Question{}, err
	}
	return domain.Question{Text: res.Question, ReferenceAnswer: res.Answer}, nil
}
