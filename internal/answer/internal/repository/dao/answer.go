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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDuplicateAnswer 违反了 uid + interview_id + question_key 唯一索引
	ErrDuplicateAnswer = errors.New("重复的回答")
)

type AnswerDAO interface {
	Create(ctx context.Context, a UserAnswer) (int64, error)
	FindByQuestion(ctx context.Context, uid, interviewID int64, questionKey string) (UserAnswer, error)
	ListByInterview(ctx context.Context, uid, interviewID int64) ([]UserAnswer, error)
}

type GORMAnswerDAO struct {
	db *egorm.Component
}

func NewGORMAnswerDAO(db *egorm.Component) AnswerDAO {
	return &GORMAnswerDAO{db: db}
}

func (dao *GORMAnswerDAO) Create(ctx context.Context, a UserAnswer) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime = now
	a.Utime = now
	err := dao.db.WithContext(ctx).Create(&a).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateAnswer
		}
	}
	return a.Id, err
}

func (dao *GORMAnswerDAO) FindByQuestion(ctx context.Context, uid, interviewID int64, questionKey string) (UserAnswer, error) {
	var res UserAnswer
	err := dao.db.WithContext(ctx).
		Where("uid = ? AND interview_id = ? AND question_key = ?", uid, interviewID, questionKey).
		First(&res).Error
	return res, err
}

func (dao *GORMAnswerDAO) ListByInterview(ctx context.Context, uid, interviewID int64) ([]UserAnswer, error) {
	var res []UserAnswer
	err := dao.db.WithContext(ctx).
		Where("uid = ? AND interview_id = ?", uid, interviewID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

// UserAnswer 每个用户在每个面试的每道题上最多只有一条
type UserAnswer struct {
	Id              int64  `gorm:"primaryKey;autoIncrement;comment:回答自增ID"`
	Uid             int64  `gorm:"not null;uniqueIndex:uniq_uid_interview_question,priority:1;comment:用户ID"`
	InterviewId     int64  `gorm:"not null;uniqueIndex:uniq_uid_interview_question,priority:2;comment:面试ID"`
	QuestionKey     string `gorm:"type:char(64);not null;uniqueIndex:uniq_uid_interview_question,priority:3;comment:题目内容的 sha256"`
	Question        string `gorm:"type:text;not null;comment:题目"`
	ReferenceAnswer string `gorm:"type:text;comment:参考答案"`
	CandidateAnswer string `gorm:"type:text;not null;comment:用户的回答"`
	Rating          int    `gorm:"type:tinyint;not null;comment:评分 0-10"`
	Feedback        string `gorm:"type:text;not null;comment:AI 反馈"`
	Ctime           int64
	Utime           int64
}

func (UserAnswer) TableName() string {
	return "user_answers"
}
