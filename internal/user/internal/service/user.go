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

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ecodeclub/mockmate/internal/user/internal/domain"
	"github.com/ecodeclub/mockmate/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=./mocks/user.mock.go -typed UserService
type UserService interface {
	Profile(ctx context.Context, id int64) (domain.User, error)
	// FindOrCreate 第一次登录的时候创建用户，之后登录不会覆盖已有的资料
	FindOrCreate(ctx context.Context, identity domain.Identity) (domain.User, error)
}

type userService struct {
	repo   repository.UserRepository
	logger *elog.Component
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo:   repo,
		logger: elog.DefaultLogger.With(elog.FieldComponent("user.service")),
	}
}

func (svc *userService) FindOrCreate(ctx context.Context, identity domain.Identity) (domain.User, error) {
	// 大部分人都不是第一次登录
	u, err := svc.repo.FindByExternalID(ctx, identity.ExternalID)
	if !errors.Is(err, repository.ErrUserNotFound) {
		return u, err
	}
	u = domain.User{
		ExternalID: identity.ExternalID,
		Name:       strings.TrimSpace(identity.Name),
		Email:      identity.Email,
		ImageURL:   identity.ImageURL,
	}
	if u.Name == "" {
		u.Name = domain.DefaultName
	}
	id, err := svc.repo.Create(ctx, u)
	if errors.Is(err, repository.ErrUserDuplicate) {
		// 同时打开了多个页面，别的请求已经创建了
		svc.logger.Debug("用户已经被并发创建", elog.String("externalId", identity.ExternalID))
		return svc.repo.FindByExternalID(ctx, identity.ExternalID)
	}
	if err != nil {
		return domain.User{}, err
	}
	u.Id = id
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}
