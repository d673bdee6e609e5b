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

package answer

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/mockmate/internal/answer/internal/domain"
	"github.com/ecodeclub/mockmate/internal/answer/internal/service"
	"github.com/ecodeclub/mockmate/internal/interview"
	interviewmocks "github.com/ecodeclub/mockmate/internal/interview/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInterviewQuestions_Question(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) interview.Service
		wantRes domain.Question
		wantErr error
	}{
		{
			name: "读取成功",
			mock: func(ctrl *gomock.Controller) interview.Service {
				svc := interviewmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Question(gomock.Any(), int64(1), int64(3), 2).
					Return(interview.Question{Question: "What is a goroutine?", Answer: "A lightweight thread."}, nil)
				return svc
			},
			wantRes: domain.Question{Text: "What is a goroutine?", ReferenceAnswer: "A lightweight thread."},
		},
		{
			name: "题目不存在",
			mock: func(ctrl *gomock.Controller) interview.Service {
				svc := interviewmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Question(gomock.Any(), int64(1), int64(3), 2).
					Return(interview.Question{}, interview.ErrQuestionNotFound)
				return svc
			},
			wantErr: service.ErrQuestionNotFound,
		},
		{
			name: "其它错误",
			mock: func(ctrl *gomock.Controller) interview.Service {
				svc := interviewmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Question(gomock.Any(), int64(1), int64(3), 2).
					Return(interview.Question{}, errors.New("mock db error"))
				return svc
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			src := newInterviewQuestions(&interview.Module{Svc: tc.mock(ctrl)})
			res, err := src.Question(context.Background(), 1, 3, 2)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
