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

package errs

var (
	SystemError        = ErrorCode{Code: 517001, Msg: "系统错误"}
	AnswerTooShort     = ErrorCode{Code: 517002, Msg: "Please provide a more detailed answer."}
	AlreadyAnswered    = ErrorCode{Code: 517003, Msg: "already answered"}
	AIRequestFailed    = ErrorCode{Code: 517004, Msg: "AI 服务调用失败，请重试"}
	AIResponseParse    = ErrorCode{Code: 517005, Msg: "AI 返回的结果无法解析，请重试"}
	AIResponseInvalid  = ErrorCode{Code: 517006, Msg: "AI 返回的结果不合法，请重试"}
	PersistenceFailed  = ErrorCode{Code: 517007, Msg: "保存失败，请重试"}
	SpeechEngineFailed = ErrorCode{Code: 517008, Msg: "语音识别出错"}
	SessionNotFound    = ErrorCode{Code: 517009, Msg: "录音会话不存在"}
	InvalidTransition  = ErrorCode{Code: 517010, Msg: "当前状态不允许这个操作"}
	StaleResponse      = ErrorCode{Code: 517011, Msg: "评分结果已经过期"}
	QuestionNotFound   = ErrorCode{Code: 517012, Msg: "题目不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
