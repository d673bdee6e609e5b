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
	"github.com/ecodeclub/mockmate/internal/interview/internal/domain"
)

type Question struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Interview struct {
	Id          int64      `json:"id"`
	Position    string     `json:"position"`
	Company     string     `json:"company"`
	Description string     `json:"description"`
	Experience  int        `json:"experience"`
	TechStack   string     `json:"techStack"`
	Questions   []Question `json:"questions"`
	AnsweredCnt int64      `json:"answeredCnt"`
	Ctime       int64      `json:"ctime"`
	Utime       int64      `json:"utime"`
}

func newInterview(itv domain.Interview) Interview {
	return Interview{
		Id:          itv.Id,
		Position:    itv.Position,
		Company:     itv.Company,
		Description: itv.Description,
		Experience:  itv.Experience,
		TechStack:   itv.TechStack,
		Questions: slice.Map(itv.Questions, func(idx int, src domain.Question) Question {
			return Question{Question: src.Question, Answer: src.Answer}
		}),
		AnsweredCnt: itv.AnsweredCnt,
		Ctime:       itv.Ctime,
		Utime:       itv.Utime,
	}
}

type SaveReq struct {
	Interview Interview `json:"interview"`
	// 更新的时候是否重新生成题目
	Regenerate bool `json:"regenerate"`
}

type DetailReq struct {
	Id int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListResp struct {
	Total      int64       `json:"total"`
	Interviews []Interview `json:"interviews"`
}
