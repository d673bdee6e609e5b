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

	"github.com/ecodeclub/mockmate/internal/answer/internal/domain"
)

// QuestionSource 提供面试里面的题目，只有面试的所有者才能拿到
//
//go:generate mockgen -source=./question.go -package=svcmocks -destination=./mocks/question.mock.go -typed QuestionSource
type QuestionSource interface {
	// Question 题目不存在或者不属于 uid 的时候返回 ErrQuestionNotFound
	Question(ctx context.Context, uid, interviewID int64, idx int) (domain.Question, error)
}
