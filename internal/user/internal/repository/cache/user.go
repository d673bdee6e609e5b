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
	"github.com/ecodeclub/mockmate/internal/user/internal/domain"
)

type UserCache interface {
	Get(ctx context.Context, id int64) (domain.User, error)
	Set(ctx context.Context, u domain.User) error
}

type UserECache struct {
	cache ecache.Cache
	// 过期时间
	expiration time.Duration
}

// NewUserECache 注意缓存前缀
func NewUserECache(c ecache.Cache) UserCache {
	return &UserECache{
		cache: &ecache.NamespaceCache{
			Namespace: "user:",
			C:         c,
		},
		expiration: time.Minute * 15,
	}
}

func (cache *UserECache) Get(ctx context.Context, id int64) (domain.User, error) {
	var u domain.User
	err := cache.cache.Get(ctx, cache.key(id)).JSONScan(&u)
	return u, err
}

func (cache *UserECache) Set(ctx context.Context, u domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return cache.cache.Set(ctx, cache.key(u.Id), data, cache.expiration)
}

func (cache *UserECache) key(id int64) string {
	return fmt.Sprintf("info:%d", id)
}
