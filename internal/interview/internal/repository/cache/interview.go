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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mockmate/internal/interview/internal/domain"
	"github.com/pkg/errors"
)

var ErrInterviewNotFound = errors.New("面试不在缓存中")

// 面试创建之后很少修改，答题的时候会反复读取
const interviewExpiration = 30 * time.Minute

type InterviewCache interface {
	Get(ctx context.Context, id int64) (domain.Interview, error)
	Set(ctx context.Context, itv domain.Interview) error
	Delete(ctx context.Context, id int64) error
}

type InterviewECache struct {
	ec ecache.Cache
}

func NewInterviewECache(ec ecache.Cache) InterviewCache {
	return &InterviewECache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "interview:",
		},
	}
}

func (c *InterviewECache) Get(ctx context.Context, id int64) (domain.Interview, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.Interview{}, ErrInterviewNotFound
	}
	if val.Err != nil {
		return domain.Interview{}, val.Err
	}
	str, err := val.String()
	if err != nil {
		return domain.Interview{}, errors.Wrap(err, "读取面试缓存失败")
	}
	var res domain.Interview
	err = json.Unmarshal([]byte(str), &res)
	return res, errors.Wrap(err, "反序列化面试失败")
}

func (c *InterviewECache) Set(ctx context.Context, itv domain.Interview) error {
	data, err := json.Marshal(itv)
	if err != nil {
		return errors.Wrap(err, "序列化面试失败")
	}
	return c.ec.Set(ctx, c.key(itv.Id), string(data), interviewExpiration)
}

func (c *InterviewECache) Delete(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *InterviewECache) key(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
