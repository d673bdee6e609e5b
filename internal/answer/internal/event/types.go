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

package event

const AnswerEventName = "answer_events"

// AnswerSavedEvent 一道题的回答保存成功之后发送
type AnswerSavedEvent struct {
	Uid         int64  `json:"uid"`
	InterviewID int64  `json:"interviewId"`
	QuestionKey string `json:"questionKey"`
	Rating      int    `json:"rating"`
	Ctime       int64  `json:"ctime"`
}

func (evt AnswerSavedEvent) MessageKey() string {
	return evt.QuestionKey
}
