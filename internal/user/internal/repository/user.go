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

	"github.com/ecodeclub/mockmate/internal/user/internal/domain"
	"github.com/ecodeclub/mockmate/internal/user/internal/repository/cache"
	"github.com/ecodeclub/mockmate/internal/user/internal/repository/dao"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=./mocks/user.mock.go -typed UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindByExternalID(ctx context.Context, externalID string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

func NewCachedUserRepository(d dao.UserDAO, c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) FindByExternalID(ctx context.Context, externalID string) (domain.User, error) {
	u, err := ur.dao.FindByExternalID(ctx, externalID)
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:         u.Id,
		ExternalId: u.ExternalID,
		Name:       u.Name,
		Email:      u.Email,
		ImageUrl:   u.ImageURL,
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:         ue.Id,
		ExternalID: ue.ExternalId,
		Name:       ue.Name,
		Email:      ue.Email,
		ImageURL:   ue.ImageUrl,
		Ctime:      ue.Ctime,
		Utime:      ue.Utime,
	}
}
