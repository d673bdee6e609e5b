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

package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type InterviewDAO interface {
	Save(ctx context.Context, itv Interview) (int64, error)
	FindByID(ctx context.Context, uid, id int64) (Interview, error)
	FindByUID(ctx context.Context, uid int64, offset, limit int) ([]Interview, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	IncrAnsweredCnt(ctx context.Context, uid, id int64) error
}

type GORMInterviewDAO struct {
	db *egorm.Component
}

func NewGORMInterviewDAO(db *egorm.Component) InterviewDAO {
	return &GORMInterviewDAO{db: db}
}

func (g *GORMInterviewDAO) Save(ctx context.Context, itv Interview) (int64, error) {
	now := time.Now().UnixMilli()
	itv.Utime = now
	if itv.Id == 0 {
		itv.Ctime = now
	}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		// uid 和 answered_cnt 不允许通过保存修改
		DoUpdates: clause.AssignmentColumns([]string{
			"position",
			"company",
			"description",
			"experience",
			"tech_stack",
			"questions",
			"utime",
		}),
	}).Create(&itv).Error
	return itv.Id, err
}

func (g *GORMInterviewDAO) FindByID(ctx context.Context, uid, id int64) (Interview, error) {
	var res Interview
	err := g.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) FindByUID(ctx context.Context, uid int64, offset, limit int) ([]Interview, error) {
	var res []Interview
	err := g.db.WithContext(ctx).Where("uid = ?", uid).
		Order("ctime DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Interview{}).Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func (g *GORMInterviewDAO) IncrAnsweredCnt(ctx context.Context, uid, id int64) error {
	return g.db.WithContext(ctx).Model(&Interview{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]any{
			"answered_cnt": gorm.Expr("answered_cnt + 1"),
			"utime":        time.Now().UnixMilli(),
		}).Error
}

type Interview struct {
	Id          int64                       `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	Uid         int64                       `gorm:"type:BIGINT;NOT NULL;index:idx_uid_ctime,priority:1;comment:'用户ID'"`
	Position    string                      `gorm:"type:VARCHAR(255);NOT NULL;comment:'岗位名称'"`
	Company     string                      `gorm:"type:VARCHAR(255);NOT NULL;default:'';comment:'公司名称，可以为空'"`
	Description string                      `gorm:"type:TEXT;NOT NULL;comment:'岗位描述'"`
	Experience  int                         `gorm:"type:INT;NOT NULL;default:0;comment:'工作年限'"`
	TechStack   string                      `gorm:"type:VARCHAR(512);NOT NULL;comment:'技术栈'"`
	Questions   sqlx.JsonColumn[[]Question] `gorm:"type:JSON;comment:'AI 生成的题目和参考答案'"`
	AnsweredCnt int64                       `gorm:"type:BIGINT;NOT NULL;default:0;comment:'已经回答的题目数量'"`
	Ctime       int64                       `gorm:"index:idx_uid_ctime,priority:2"`
	Utime       int64
}

func (Interview) TableName() string {
	return "interviews"
}

type Question struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
