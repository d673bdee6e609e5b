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

package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Question 一次录音只回答一个问题，创建之后不会修改
type Question struct {
	Text            string
	ReferenceAnswer string
}

// Key 用题目内容计算出来的稳定标识，同一个面试里面同一道题只能回答一次
func (q Question) Key() string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(q.Text)))
	return hex.EncodeToString(sum[:])
}

// ScoreResult AI 给出的评分，范围是 [0, 10]
type ScoreResult struct {
	Rating   int
	Feedback string
}

type AnswerRecord struct {
	Id              int64
	Uid             int64
	InterviewID     int64
	QuestionKey     string
	QuestionText    string
	ReferenceAnswer string
	CandidateAnswer string
	Rating          int
	Feedback        string
	Ctime           int64
	Utime           int64
}

func (r AnswerRecord) Level() Level {
	return LevelOf(r.Rating)
}

type Level string

const (
	LevelStrong           Level = "strong"
	LevelGood             Level = "good"
	LevelNeedsImprovement Level = "needs_improvement"
)

func LevelOf(rating int) Level {
	switch {
	case rating >= 8:
		return LevelStrong
	case rating >= 5:
		return LevelGood
	default:
		return LevelNeedsImprovement
	}
}

// Feedback 一次面试的整体反馈
type Feedback struct {
	InterviewID int64
	Records     []AnswerRecord
}

// OverallRating 平均分，保留一位小数，没有回答的时候是 0.0
func (f Feedback) OverallRating() string {
	if len(f.Records) == 0 {
		return "0.0"
	}
	total := 0
	for _, r := range f.Records {
		total += r.Rating
	}
	return fmt.Sprintf("%.1f", float64(total)/float64(len(f.Records)))
}
