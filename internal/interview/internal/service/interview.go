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

	"github.com/ecodeclub/mockmate/internal/interview/internal/domain"
	"github.com/ecodeclub/mockmate/internal/interview/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInterviewNotFound = repository.ErrInterviewNotFound
	ErrQuestionNotFound  = errors.New("题目不存在")
	ErrQuestionGenerate  = errors.New("AI 生成题目失败")
)

//go:generate mockgen -source=./interview.go -destination=../../mocks/interview.mock.go -package=interviewmocks -typed InterviewService
type InterviewService interface {
	// Save 新建的面试或者 regenerate 为 true 的时候会调用 AI 生成题目
	Save(ctx context.Context, itv domain.Interview, regenerate bool) (domain.Interview, error)
	Detail(ctx context.Context, uid, id int64) (domain.Interview, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Interview, int64, error)
	// Question 面试里面下标为 idx 的题目
	Question(ctx context.Context, uid, id int64, idx int) (domain.Question, error)
	// IncrAnsweredCnt 一道题的回答保存之后调用
	IncrAnsweredCnt(ctx context.Context, uid, id int64) error
}

type interviewService struct {
	repo      repository.InterviewRepository
	generator QuestionGenerator
}

func NewInterviewService(repo repository.InterviewRepository, generator QuestionGenerator) InterviewService {
	return &interviewService{repo: repo, generator: generator}
}

func (s *interviewService) Save(ctx context.Context, itv domain.Interview, regenerate bool) (domain.Interview, error) {
	if itv.Id > 0 {
		old, err := s.repo.FindByID(ctx, itv.Uid, itv.Id)
		if err != nil {
			return domain.Interview{}, err
		}
		itv.Questions = old.Questions
		itv.AnsweredCnt = old.AnsweredCnt
		itv.Ctime = old.Ctime
	}
	if itv.Id == 0 || regenerate {
		questions, err := s.generator.Generate(ctx, itv)
		if err != nil {
			return domain.Interview{}, err
		}
		itv.Questions = questions
	}
	id, err := s.repo.Save(ctx, itv)
	if err != nil {
		return domain.Interview{}, err
	}
	itv.Id = id
	return itv, nil
}

func (s *interviewService) Detail(ctx context.Context, uid, id int64) (domain.Interview, error) {
	return s.repo.FindByID(ctx, uid, id)
}

func (s *interviewService) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Interview, int64, error) {
	var (
		itvs  []domain.Interview
		total int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		itvs, err = s.repo.FindByUID(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUID(ctx, uid)
		return err
	})
	return itvs, total, eg.Wait()
}

func (s *interviewService) Question(ctx context.Context, uid, id int64, idx int) (domain.Question, error) {
	itv, err := s.repo.FindByID(ctx, uid, id)
	if errors.Is(err, ErrInterviewNotFound) {
		return domain.Question{}, ErrQuestionNotFound
	}
	if err != nil {
		return domain.Question{}, err
	}
	q, ok := itv.QuestionAt(idx)
	if !ok {
		return domain.Question{}, ErrQuestionNotFound
	}
	return q, nil
}

func (s *interviewService) IncrAnsweredCnt(ctx context.Context, uid, id int64) error {
	return s.repo.IncrAnsweredCnt(ctx, uid, id)
}
