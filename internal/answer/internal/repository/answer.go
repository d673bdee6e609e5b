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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mockmate/internal/answer/internal/domain"
	"github.com/ecodeclub/mockmate/internal/answer/internal/repository/dao"
)

var ErrDuplicateAnswer = dao.ErrDuplicateAnswer

//go:generate mockgen -source=./answer.go -package=repomocks -destination=./mocks/answer.mock.go -typed AnswerRepository
type AnswerRepository interface {
	// Create 违反唯一索引的时候返回 ErrDuplicateAnswer
	Create(ctx context.Context, r domain.AnswerRecord) (int64, error)
	Exists(ctx context.Context, uid, interviewID int64, questionKey string) (bool, error)
	ListByInterview(ctx context.Context, uid, interviewID int64) ([]domain.AnswerRecord, error)
}

type answerRepository struct {
	dao dao.AnswerDAO
}

func NewAnswerRepository(d dao.AnswerDAO) AnswerRepository {
	return &answerRepository{dao: d}
}

func (repo *answerRepository) Create(ctx context.Context, r domain.AnswerRecord) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(r))
}

func (repo *answerRepository) Exists(ctx context.Context, uid, interviewID int64, questionKey string) (bool, error) {
	_, err := repo.dao.FindByQuestion(ctx, uid, interviewID, questionKey)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, dao.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (repo *answerRepository) ListByInterview(ctx context.Context, uid, interviewID int64) ([]domain.AnswerRecord, error) {
	res, err := repo.dao.ListByInterview(ctx, uid, interviewID)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.UserAnswer) domain.AnswerRecord {
		return repo.toDomain(src)
	}), nil
}

func (repo *answerRepository) toEntity(r domain.AnswerRecord) dao.UserAnswer {
	return dao.UserAnswer{
		Id:              r.Id,
		Uid:             r.Uid,
		InterviewId:     r.InterviewID,
		QuestionKey:     r.QuestionKey,
		Question:        r.QuestionText,
		ReferenceAnswer: r.ReferenceAnswer,
		CandidateAnswer: r.CandidateAnswer,
		Rating:          r.Rating,
		Feedback:        r.Feedback,
	}
}

func (repo *answerRepository) toDomain(a dao.UserAnswer) domain.AnswerRecord {
	return domain.AnswerRecord{
		Id:              a.Id,
		Uid:             a.Uid,
		InterviewID:     a.InterviewId,
		QuestionKey:     a.QuestionKey,
		QuestionText:    a.Question,
		ReferenceAnswer: a.ReferenceAnswer,
		CandidateAnswer: a.CandidateAnswer,
		Rating:          a.Rating,
		Feedback:        a.Feedback,
		Ctime:           a.Ctime,
		Utime:           a.Utime,
	}
}
