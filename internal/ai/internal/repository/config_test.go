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
	"testing"

	"github.com/ecodeclub/mockmate/internal/ai/internal/domain"
	"github.com/ecodeclub/mockmate/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/mockmate/internal/ai/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeConfigDAO struct {
	cfgs  map[string]dao.BizConfig
	err   error
	calls int
}

func (f *fakeConfigDAO) GetConfig(ctx context.Context, biz string) (dao.BizConfig, error) {
	f.calls++
	if f.err != nil {
		return dao.BizConfig{}, f.err
	}
	cfg, ok := f.cfgs[biz]
	if !ok {
		return dao.BizConfig{}, gorm.ErrRecordNotFound
	}
	return cfg, nil
}

func (f *fakeConfigDAO) Save(ctx context.Context, cfg dao.BizConfig) (int64, error) {
	if f.cfgs == nil {
		f.cfgs = map[string]dao.BizConfig{}
	}
	cfg.Id = int64(len(f.cfgs) + 1)
	f.cfgs[cfg.Biz] = cfg
	return cfg.Id, nil
}

type fakeConfigCache struct {
	cfgs   map[string]domain.BizConfig
	getErr error
}

func (f *fakeConfigCache) Get(ctx context.Context, biz string) (domain.BizConfig, error) {
	if f.getErr != nil {
		return domain.BizConfig{}, f.getErr
	}
	cfg, ok := f.cfgs[biz]
	if !ok {
		return domain.BizConfig{}, cache.ErrConfigNotFound
	}
	return cfg, nil
}

func (f *fakeConfigCache) Set(ctx context.Context, cfg domain.BizConfig) error {
	f.cfgs[cfg.Biz] = cfg
	return nil
}

func TestCachedConfigRepository_GetConfig(t *testing.T) {
	defaults := DefaultConfigs{
		domain.BizAnswerScore: {Model: "gemini-2.0-flash", TopP: 0.98},
	}

	t.Run("数据库优先", func(t *testing.T) {
		d := &fakeConfigDAO{cfgs: map[string]dao.BizConfig{
			domain.BizAnswerScore: {Id: 1, Biz: domain.BizAnswerScore, Model: "glm-4", Platform: domain.PlatformZhipu},
		}}
		c := &fakeConfigCache{cfgs: map[string]domain.BizConfig{}}
		repo := NewCachedConfigRepository(d, c, defaults)
		cfg, err := repo.GetConfig(context.Background(), domain.BizAnswerScore)
		require.NoError(t, err)
		assert.Equal(t, domain.BizConfig{Id: 1, Biz: domain.BizAnswerScore, Model: "glm-4", Platform: domain.PlatformZhipu}, cfg)
		// 第二次走缓存
		_, err = repo.GetConfig(context.Background(), domain.BizAnswerScore)
		require.NoError(t, err)
		assert.Equal(t, 1, d.calls)
	})

	t.Run("使用默认配置", func(t *testing.T) {
		d := &fakeConfigDAO{}
		c := &fakeConfigCache{cfgs: map[string]domain.BizConfig{}}
		repo := NewCachedConfigRepository(d, c, defaults)
		cfg, err := repo.GetConfig(context.Background(), domain.BizAnswerScore)
		require.NoError(t, err)
		assert.Equal(t, domain.BizConfig{Biz: domain.BizAnswerScore, Model: "gemini-2.0-flash", TopP: 0.98}, cfg)
	})

	t.Run("没有任何配置", func(t *testing.T) {
		repo := NewCachedConfigRepository(&fakeConfigDAO{}, &fakeConfigCache{cfgs: map[string]domain.BizConfig{}}, defaults)
		_, err := repo.GetConfig(context.Background(), "unknown")
		assert.ErrorIs(t, err, ErrBizConfigNotFound)
	})

	t.Run("数据库错误", func(t *testing.T) {
		dbErr := errors.New("db down")
		repo := NewCachedConfigRepository(&fakeConfigDAO{err: dbErr}, &fakeConfigCache{cfgs: map[string]domain.BizConfig{}}, defaults)
		_, err := repo.GetConfig(context.Background(), domain.BizAnswerScore)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("缓存出错降级到数据库", func(t *testing.T) {
		d := &fakeConfigDAO{cfgs: map[string]dao.BizConfig{
			domain.BizAnswerScore: {Id: 2, Biz: domain.BizAnswerScore, Model: "glm-4"},
		}}
		c := &fakeConfigCache{cfgs: map[string]domain.BizConfig{}, getErr: errors.New("redis down")}
		repo := NewCachedConfigRepository(d, c, defaults)
		cfg, err := repo.GetConfig(context.Background(), domain.BizAnswerScore)
		require.NoError(t, err)
		assert.Equal(t, "glm-4", cfg.Model)
	})
}

func TestCachedConfigRepository_Save(t *testing.T) {
	d := &fakeConfigDAO{}
	c := &fakeConfigCache{cfgs: map[string]domain.BizConfig{}}
	repo := NewCachedConfigRepository(d, c, nil)
	id, err := repo.Save(context.Background(), domain.BizConfig{Biz: domain.BizQuestionGenerate, Model: "glm-4"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, domain.BizConfig{Id: 1, Biz: domain.BizQuestionGenerate, Model: "glm-4"}, c.cfgs[domain.BizQuestionGenerate])
}
