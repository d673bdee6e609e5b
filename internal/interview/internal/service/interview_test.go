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

	"github.com/ecodeclub/mockmate/internal/interview/internal/domain"
	"github.com/ecodeclub/mockmate/internal/interview/internal/repository"
	repomocks "github.com/ecodeclub/mockmate/internal/interview/internal/repository/mocks"
	svcmocks "github.com/ecodeclub/mockmate/internal/interview/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var generated = []domain.Question{
	{Question: "What is a goroutine?", Answer: "A lightweight thread."},
}

func TestInterviewService_Save(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(ctrl *gomock.Controller) (repository.InterviewRepository, QuestionGenerator)
		itv        domain.Interview
		regenerate bool
		wantRes    domain.Interview
		wantErr    error
	}{
		{
			name: "新建的时候生成题目",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, QuestionGenerator) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				gen := svcmocks.NewMockQuestionGenerator(ctrl)
				gen.EXPECT().Generate(gomock.Any(), domain.Interview{Uid: 1, Position: "Go"}).Return(generated, nil)
				repo.EXPECT().Save(gomock.Any(), domain.Interview{Uid: 1, Position: "Go", Questions: generated}).
					Return(int64(3), nil)
				return repo, gen
			},
			itv:     domain.Interview{Uid: 1, Position: "Go"},
			wantRes: domain.Interview{Id: 3, Uid: 1, Position: "Go", Questions: generated},
		},
		{
			name: "更新的时候保留原来的题目",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, QuestionGenerator) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				gen := svcmocks.NewMockQuestionGenerator(ctrl)
				old := domain.Interview{Id: 3, Uid: 1, Position: "Go", Questions: generated, AnsweredCnt: 1, Ctime: 10}
				repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(3)).Return(old, nil)
				repo.EXPECT().Save(gomock.Any(), domain.Interview{
					Id: 3, Uid: 1, Position: "Java", Questions: generated, AnsweredCnt: 1, Ctime: 10,
				}).Return(int64(3), nil)
				return repo, gen
			},
			itv:     domain.Interview{Id: 3, Uid: 1, Position: "Java"},
			wantRes: domain.Interview{Id: 3, Uid: 1, Position: "Java", Questions: generated, AnsweredCnt: 1, Ctime: 10},
		},
		{
			name: "更新并且重新生成题目",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, QuestionGenerator) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				gen := svcmocks.NewMockQuestionGenerator(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(3)).
					Return(domain.Interview{Id: 3, Uid: 1, Questions: []domain.Question{{Question: "old"}}}, nil)
				regenerated := []domain.Question{{Question: "new", Answer: "a"}}
				gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(regenerated, nil)
				repo.EXPECT().Save(gomock.Any(), domain.Interview{Id: 3, Uid: 1, Questions: regenerated}).
					Return(int64(3), nil)
				return repo, gen
			},
			itv:        domain.Interview{Id: 3, Uid: 1},
			regenerate: true,
			wantRes:    domain.Interview{Id: 3, Uid: 1, Questions: []domain.Question{{Question: "new", Answer: "a"}}},
		},
		{
			name: "更新别人的面试",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, QuestionGenerator) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				gen := svcmocks.NewMockQuestionGenerator(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(2), int64(3)).Return(domain.Interview{}, ErrInterviewNotFound)
				return repo, gen
			},
			itv:     domain.Interview{Id: 3, Uid: 2},
			wantErr: ErrInterviewNotFound,
		},
		{
			name: "生成题目失败不保存",
			mock: func(ctrl *gomock.Controller) (repository.InterviewRepository, QuestionGenerator) {
				repo := repomocks.NewMockInterviewRepository(ctrl)
				gen := svcmocks.NewMockQuestionGenerator(ctrl)
				gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, ErrQuestionGenerate)
				return repo, gen
			},
			itv:     domain.Interview{Uid: 1},
			wantErr: ErrQuestionGenerate,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewInterviewService(tc.mock(ctrl))
			res, err := svc.Save(context.Background(), tc.itv, tc.regenerate)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestInterviewService_Question(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockInterviewRepository(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(3)).
		Return(domain.Interview{Id: 3, Uid: 1, Questions: generated}, nil).Times(3)
	repo.EXPECT().FindByID(gomock.Any(), int64(2), int64(3)).Return(domain.Interview{}, ErrInterviewNotFound)
	dbErr := errors.New("db down")
	repo.EXPECT().FindByID(gomock.Any(), int64(1), int64(4)).Return(domain.Interview{}, dbErr)
	svc := NewInterviewService(repo, svcmocks.NewMockQuestionGenerator(ctrl))
	ctx := context.Background()

	q, err := svc.Question(ctx, 1, 3, 0)
	assert.NoError(t, err)
	assert.Equal(t, generated[0], q)
	_, err = svc.Question(ctx, 1, 3, 1)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
	_, err = svc.Question(ctx, 1, 3, -1)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
	_, err = svc.Question(ctx, 2, 3, 0)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
	_, err = svc.Question(ctx, 1, 4, 0)
	assert.ErrorIs(t, err, dbErr)
}

func TestInterviewService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockInterviewRepository(ctrl)
	itvs := []domain.Interview{{Id: 2, Uid: 1}, {Id: 1, Uid: 1}}
	repo.EXPECT().FindByUID(gomock.Any(), int64(1), 0, 10).Return(itvs, nil)
	repo.EXPECT().CountByUID(gomock.Any(), int64(1)).Return(int64(2), nil)
	svc := NewInterviewService(repo, svcmocks.NewMockQuestionGenerator(ctrl))
	res, total, err := svc.List(context.Background(), 1, 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, itvs, res)
	assert.Equal(t, int64(2), total)
}
