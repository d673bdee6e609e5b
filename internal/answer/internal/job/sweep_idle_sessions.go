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

package job

import (
	"context"
	"time"

	"github.com/ecodeclub/mockmate/internal/answer/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*SweepIdleSessionsJob)(nil)

// SweepIdleSessionsJob 清理用户离开页面之后遗留的录音会话
type SweepIdleSessionsJob struct {
	svc    service.Service
	ttl    time.Duration
	logger *elog.Component
}

func NewSweepIdleSessionsJob(svc service.Service, ttl time.Duration) *SweepIdleSessionsJob {
	return &SweepIdleSessionsJob{
		svc:    svc,
		ttl:    ttl,
		logger: elog.DefaultLogger.With(elog.FieldComponent("answer.job")),
	}
}

func (j *SweepIdleSessionsJob) Name() string {
	return "SweepIdleSessionsJob"
}

func (j *SweepIdleSessionsJob) Run(ctx context.Context) error {
	cnt := j.svc.SweepIdleSessions(ctx, j.ttl)
	if cnt > 0 {
		j.logger.Info("清理空闲会话", elog.Int("cnt", cnt))
	}
	return nil
}
