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
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mockmate/internal/ai/internal/domain"
	"github.com/pkg/errors"
)

var ErrConfigNotFound = errors.New("配置不在缓存中")

const configExpiration = 10 * time.Minute

type ConfigCache interface {
	Get(ctx context.Context, biz string) (domain.BizConfig, error)
	Set(ctx context.Context, cfg domain.BizConfig) error
}

type configCache struct {
	ec ecache.Cache
}

func NewConfigCache(ec ecache.Cache) ConfigCache {
	return &configCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "ai:biz_config:",
		},
	}
}

func (c *configCache) Get(ctx context.Context, biz string) (domain.BizConfig, error) {
	val := c.ec.Get(ctx, biz)
	if val.KeyNotFound() {
		return domain.BizConfig{}, ErrConfigNotFound
	}
	if val.Err != nil {
		return domain.BizConfig{}, val.Err
	}
	str, err := val.String()
	if err != nil {
		return domain.BizConfig{}, errors.Wrap(err, "读取配置缓存失败")
	}
	var res domain.BizConfig
	err = json.Unmarshal([]byte(str), &res)
	return res, errors.Wrap(err, "反序列化配置失败")
}

func (c *configCache) Set(ctx context.Context, cfg domain.BizConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "序列化配置失败")
	}
	return c.ec.Set(ctx, cfg.Biz, string(data), configExpiration)
}
