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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mockmate/internal/interview/internal/domain"
	"github.com/ecodeclub/mockmate/internal/interview/internal/repository/cache"
	"github.com/ecodeclub/mockmate/internal/interview/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrInterviewNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./interview.go -package=repomocks -destination=./mocks/interview.mock.go -typed InterviewRepository
type InterviewRepository interface {
	Save(ctx context.Context, itv domain.Interview) (int64, error)
	// FindByID 不属于 uid 的面试当作不存在
	FindByID(ctx context.Context, uid, id int64) (domain.Interview, error)
	FindByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Interview, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	IncrAnsweredCnt(ctx context.Context, uid, id int64) error
}

type CachedInterviewRepository struct {
	dao    dao.InterviewDAO
	cache  cache.InterviewCache
	logger *elog.Component
}

func NewCachedInterviewRepository(d dao.InterviewDAO, c cache.InterviewCache) InterviewRepository {
	return &CachedInterviewRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger.With(elog.FieldComponent("interview.repository")),
	}
}

func (repo *CachedInterviewRepository) Save(ctx context.Context, itv domain.Interview) (int64, error) {
	id, err := repo.dao.Save(ctx, repo.toEntity(itv))
	if err != nil {
		return 0, err
	}
	if itv.Id > 0 {
		repo.invalidate(ctx, itv.Id)
	}
	return id, nil
}

func (repo *CachedInterviewRepository) FindByID(ctx context.Context, uid, id int64) (domain.Interview, error) {
	res, err := repo.cache.Get(ctx, id)
	if err == nil {
		if res.Uid != uid {
			return domain.Interview{}, ErrInterviewNotFound
		}
		return res, nil
	}
	if !errors.Is(err, cache.ErrInterviewNotFound) {
		repo.logger.Error("读取面试缓存失败", elog.FieldErr(err), elog.Int64("id", id))
	}
	entity, err := repo.dao.FindByID(ctx, uid, id)
	if err != nil {
		return domain.Interview{}, err
	}
	res = repo.toDomain(entity)
	if err = repo.cache.Set(ctx, res); err != nil {
		repo.logger.Error("回写面试缓存失败", elog.FieldErr(err), elog.Int64("id", id))
	}
	return res, nil
}

func (repo *CachedInterviewRepository) FindByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Interview, error) {
	res, err := repo.dao.FindByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Interview) domain.Interview {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedInterviewRepository) CountByUID(ctx context.Context, uid int64) (int64, error) {
	return repo.dao.CountByUID(ctx, uid)
}

func (repo *CachedInterviewRepository) IncrAnsweredCnt(ctx context.Context, uid, id int64) error {
	err := repo.dao.IncrAnsweredCnt(ctx, uid, id)
	if err != nil {
		return err
	}
	repo.invalidate(ctx, id)
	return nil
}

func (repo *CachedInterviewRepository) invalidate(ctx context.Context, id int64) {
	if err := repo.cache.Delete(ctx, id); err != nil {
		repo.logger.Error("删除面试缓存失败", elog.FieldErr(err), elog.Int64("id", id))
	}
}

func (repo *CachedInterviewRepository) toEntity(itv domain.Interview) dao.Interview {
	return dao.Interview{
		Id:          itv.Id,
		Uid:         itv.Uid,
		Position:    itv.Position,
		Company:     itv.Company,
		Description: itv.Description,
		Experience:  itv.Experience,
		TechStack:   itv.TechStack,
		Questions: sqlx.JsonColumn[[]dao.Question]{
			Valid: len(itv.Questions) > 0,
			Val: slice.Map(itv.Questions, func(idx int, src domain.Question) dao.Question {
				return dao.Question{Question: src.Question, Answer: src.Answer}
			}),
		},
	}
}

func (repo *CachedInterviewRepository) toDomain(itv dao.Interview) domain.Interview {
	return domain.Interview{
		Id:          itv.Id,
		Uid:         itv.Uid,
		Position:    itv.Position,
		Company:     itv.Company,
		Description: itv.Description,
		Experience:  itv.Experience,
		TechStack:   itv.TechStack,
		Questions: slice.Map(itv.Questions.Val, func(idx int, src dao.Question) domain.Question {
			return domain.Question{Question: src.Question, Answer: src.Answer}
		}),
		AnsweredCnt: itv.AnsweredCnt,
		Ctime:       itv.Ctime,
		Utime:       itv.Utime,
	}
}
