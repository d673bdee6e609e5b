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

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/mockmate/internal/ai/internal/domain"
	"github.com/ecodeclub/mockmate/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/mockmate/internal/ai/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

var ErrBizConfigNotFound = errors.New("业务没有配置 AI 参数")

type ConfigRepository interface {
	GetConfig(ctx context.Context, biz string) (domain.BizConfig, error)
	Save(ctx context.Context, cfg domain.BizConfig) (int64, error)
}

// DefaultConfigs 数据库里面没有配置的时候使用，一般来自配置文件
type DefaultConfigs map[string]domain.BizConfig

type CachedConfigRepository struct {
	dao      dao.ConfigDAO
	cache    cache.ConfigCache
	defaults DefaultConfigs
	logger   *elog.Component
}

func NewCachedConfigRepository(dao dao.ConfigDAO, c cache.ConfigCache, defaults DefaultConfigs) ConfigRepository {
	return &CachedConfigRepository{
		dao:      dao,
		cache:    c,
		defaults: defaults,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("ai.config")),
	}
}

func (repo *CachedConfigRepository) GetConfig(ctx context.Context, biz string) (domain.BizConfig, error) {
	res, err := repo.cache.Get(ctx, biz)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, cache.ErrConfigNotFound) {
		// 缓存出问题了，继续查数据库
		repo.logger.Warn("读取配置缓存失败", elog.String("biz", biz), elog.FieldErr(err))
	}

	entity, err := repo.dao.GetConfig(ctx, biz)
	switch {
	case err == nil:
		res = repo.toDomain(entity)
	case errors.Is(err, gorm.ErrRecordNotFound):
		var ok bool
		res, ok = repo.defaults[biz]
		if !ok {
			return domain.BizConfig{}, fmt.Errorf("%w: biz %s", ErrBizConfigNotFound, biz)
		}
		res.Biz = biz
	default:
		return domain.BizConfig{}, err
	}

	if err = repo.cache.Set(ctx, res); err != nil {
		repo.logger.Warn("回写配置缓存失败", elog.String("biz", biz), elog.FieldErr(err))
	}
	return res, nil
}

func (repo *CachedConfigRepository) Save(ctx context.Context, cfg domain.BizConfig) (int64, error) {
	id, err := repo.dao.Save(ctx, repo.toEntity(cfg))
	if err != nil {
		return 0, err
	}
	cfg.Id = id
	if err = repo.cache.Set(ctx, cfg); err != nil {
		repo.logger.Warn("更新配置缓存失败", elog.String("biz", cfg.Biz), elog.FieldErr(err))
	}
	return id, nil
}

func (repo *CachedConfigRepository) toDomain(c dao.BizConfig) domain.BizConfig {
	return domain.BizConfig{
		Id:           c.Id,
		Biz:          c.Biz,
		Platform:     c.Platform,
		Model:        c.Model,
		Price:        c.Price,
		Temperature:  c.Temperature,
		TopP:         c.TopP,
		MaxTokens:    c.MaxTokens,
		SystemPrompt: c.SystemPrompt,
		MaxInput:     c.MaxInput,
		Utime:        c.Utime,
	}
}

func (repo *CachedConfigRepository) toEntity(c domain.BizConfig) dao.BizConfig {
	return dao.BizConfig{
		Id:           c.Id,
		Biz:          c.Biz,
		Platform:     c.Platform,
		Model:        c.Model,
		Price:        c.Price,
		Temperature:  c.Temperature,
		TopP:         c.TopP,
		MaxTokens:    c.MaxTokens,
		SystemPrompt: c.SystemPrompt,
		MaxInput:     c.MaxInput,
	}
}
