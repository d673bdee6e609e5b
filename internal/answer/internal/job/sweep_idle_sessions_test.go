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
	"testing"
	"time"

	"github.com/ecodeclub/mockmate/internal/answer/internal/service"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	service.Service
	ttl time.Duration
	cnt int
}

func (f *fakeService) SweepIdleSessions(ctx context.Context, ttl time.Duration) int {
	f.ttl = ttl
	return f.cnt
}

func TestSweepIdleSessionsJob_Run(t *testing.T) {
	svc := &fakeService{cnt: 2}
	job := NewSweepIdleSessionsJob(svc, 10*time.Minute)
	assert.Equal(t, "SweepIdleSessionsJob", job.Name())
	assert.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 10*time.Minute, svc.ttl)
}
