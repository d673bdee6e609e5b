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
	"testing"

	"github.com/ecodeclub/mockmate/internal/user/internal/domain"
	"github.com/ecodeclub/mockmate/internal/user/internal/repository"
	repomocks "github.com/ecodeclub/mockmate/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUserService_FindOrCreate(t *testing.T) {
	identity := domain.Identity{
		ExternalID: "user_2abc",
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		ImageURL:   "https://img.example.com/ada.png",
	}
	testCases := []struct {
		name     string
		identity domain.Identity
		mock     func(ctrl *gomock.Controller) repository.UserRepository
		wantRes  domain.User
		wantErr  error
	}{
		{
			name:     "已经注册过",
			identity: identity,
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByExternalID(gomock.Any(), "user_2abc").
					Return(domain.User{Id: 1, ExternalID: "user_2abc", Name: "Old Name"}, nil)
				return repo
			},
			// 不会覆盖已有的资料
			wantRes: domain.User{Id: 1, ExternalID: "user_2abc", Name: "Old Name"},
		},
		{
			name:     "第一次登录",
			identity: identity,
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByExternalID(gomock.Any(), "user_2abc").
					Return(domain.User{}, repository.ErrUserNotFound)
				repo.EXPECT().Create(gomock.Any(), domain.User{
					ExternalID: "user_2abc",
					Name:       "Ada Lovelace",
					Email:      "ada@example.com",
					ImageURL:   "https://img.example.com/ada.png",
				}).Return(int64(2), nil)
				return repo
			},
			wantRes: domain.User{
				Id:         2,
				ExternalID: "user_2abc",
				Name:       "Ada Lovelace",
				Email:      "ada@example.com",
				ImageURL:   "https://img.example.com/ada.png",
			},
		},
		{
			name:     "没有名字",
			identity: domain.Identity{ExternalID: "user_3", Name: "  "},
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByExternalID(gomock.Any(), "user_3").
					Return(domain.User{}, repository.ErrUserNotFound)
				repo.EXPECT().Create(gomock.Any(), domain.User{ExternalID: "user_3", Name: domain.DefaultName}).
					Return(int64(3), nil)
				return repo
			},
			wantRes: domain.User{Id: 3, ExternalID: "user_3", Name: domain.DefaultName},
		},
		{
			name:     "并发创建",
			identity: identity,
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				gomock.InOrder(
					repo.EXPECT().FindByExternalID(gomock.Any(), "user_2abc").
						Return(domain.User{}, repository.ErrUserNotFound),
					repo.EXPECT().Create(gomock.Any(), gomock.Any()).
						Return(int64(0), repository.ErrUserDuplicate),
					repo.EXPECT().FindByExternalID(gomock.Any(), "user_2abc").
						Return(domain.User{Id: 4, ExternalID: "user_2abc"}, nil),
				)
				return repo
			},
			wantRes: domain.User{Id: 4, ExternalID: "user_2abc"},
		},
		{
			name:     "查询失败",
			identity: identity,
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByExternalID(gomock.Any(), "user_2abc").
					Return(domain.User{}, errors.New("mock db error"))
				return repo
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl))
			res, err := svc.FindOrCreate(context.Background(), tc.identity)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
