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

// Interview 用户创建的一次模拟面试，题目由 AI 根据岗位信息生成
type Interview struct {
	Id          int64
	Uid         int64
	Position    string
	Company     string
	Description string
	// 工作年限
	Experience int
	TechStack  string
	Questions  []Question
	// 已经回答并且保存了的题目数量
	AnsweredCnt int64
	Ctime       int64
	Utime       int64
}

// QuestionAt 越界的时候第二个返回值是 false
func (i Interview) QuestionAt(idx int) (Question, bool) {
	if idx < 0 || idx >= len(i.Questions) {
		return Question{}, false
	}
	return i.Questions[idx], true
}

type Question struct {
	Question string `json:"question"`
	// 参考答案
	Answer string `json:"answer"`
}
