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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mockmate/internal/ai/internal/domain"
	"github.com/ecodeclub/mockmate/internal/ai/internal/repository/dao"
)

type LLMRecordRepository interface {
	Save(ctx context.Context, r domain.LLMRecord) (int64, error)
}

type llmRecordRepository struct {
	dao dao.LLMRecordDAO
}

func NewLLMRecordRepository(d dao.LLMRecordDAO) LLMRecordRepository {
	return &llmRecordRepository{
		dao: d,
	}
}

func (g *llmRecordRepository) Save(ctx context.Context, r domain.LLMRecord) (int64, error) {
	return g.dao.Save(ctx, g.toEntity(r))
}

func (g *llmRecordRepository) toEntity(r domain.LLMRecord) dao.LLMRecord {
	return dao.LLMRecord{
		Id:       r.Id,
		Tid:      r.Tid,
		Uid:      r.Uid,
		Biz:      r.Biz,
		Platform: r.Platform,
		Model:    r.Model,
		Tokens:   r.Tokens,
		Amount:   r.Amount,
		Status:   r.Status.ToUint8(),
		Prompt:   sqlx.NewNullString(r.Prompt),
		Answer:   sqlx.NewNullString(r.Answer),
		Reason:   sqlx.NewNullString(r.Reason),
	}
}
