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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mockmate/internal/answer/internal/domain"
	"github.com/ecodeclub/mockmate/internal/pkg/speech"
)

type StartReq struct {
	InterviewId int64 `json:"interviewId"`
	// 题目在面试里面的下标，从 0 开始
	QuestionIdx int `json:"questionIdx"`
	// 为空的时候使用 Accept-Language
	Locale string `json:"locale"`
}

type SessionReq struct {
	SN string `json:"sn"`
}

type FragmentReq struct {
	SN        string            `json:"sn"`
	Fragments []speech.Fragment `json:"fragments"`
	// 浏览器端识别引擎的错误，例如 not-allowed、network
	EngineError string `json:"engineError"`
}

type FeedbackReq struct {
	InterviewId int64 `json:"interviewId"`
}

type Score struct {
	Ratings  int    `json:"ratings"`
	Feedback string `json:"feedback"`
	Level    string `json:"level"`
}

func newScore(s domain.ScoreResult) Score {
	return Score{
		Ratings:  s.Rating,
		Feedback: s.Feedback,
		Level:    string(domain.LevelOf(s.Rating)),
	}
}

type Session struct {
	SN          string `json:"sn"`
	InterviewId int64  `json:"interviewId"`
	QuestionIdx int    `json:"questionIdx"`
	Question    string `json:"question"`
	Locale      string `json:"locale"`
	State       string `json:"state"`
	Answer      string `json:"answer"`
	Interim     string `json:"interim"`
	Score       *Score `json:"score,omitempty"`
	LastErr     string `json:"lastErr,omitempty"`
}

func newSession(s domain.SessionSnapshot) Session {
	res := Session{
		SN:          s.SN,
		InterviewId: s.InterviewID,
		QuestionIdx: s.QuestionIdx,
		Question:    s.Question.Text,
		Locale:      s.Locale,
		State:       s.State.String(),
		Answer:      s.Answer,
		Interim:     s.Interim,
	}
	if s.Score != nil {
		sc := newScore(*s.Score)
		res.Score = &sc
	}
	if s.LastErr != nil {
		res.LastErr = s.LastErr.Error()
	}
	return res
}

type Answer struct {
	Id              int64  `json:"id"`
	Question        string `json:"question"`
	ReferenceAnswer string `json:"referenceAnswer"`
	Answer          string `json:"answer"`
	Ratings         int    `json:"ratings"`
	Feedback        string `json:"feedback"`
	Level           string `json:"level"`
	Ctime           int64  `json:"ctime"`
}

type Feedback struct {
	InterviewId   int64    `json:"interviewId"`
	OverallRating string   `json:"overallRating"`
	Answers       []Answer `json:"answers"`
}

func newFeedback(f domain.Feedback) Feedback {
	return Feedback{
		InterviewId:   f.InterviewID,
		OverallRating: f.OverallRating(),
		Answers: slice.Map(f.Records, func(idx int, src domain.AnswerRecord) Answer {
			return Answer{
				Id:              src.Id,
				Question:        src.QuestionText,
				ReferenceAnswer: src.ReferenceAnswer,
				Answer:          src.CandidateAnswer,
				Ratings:         src.Rating,
				Feedback:        src.Feedback,
				Level:           string(src.Level()),
				Ctime:           src.Ctime,
			}
		}),
	}
}

type SaveResult struct {
	Id int64 `json:"id"`
}
