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
	SystemError       = ErrorCode{Code: 516001, Msg: "系统错误"}
	InterviewNotFound = ErrorCode{Code: 516002, Msg: "面试不存在"}
	QuestionGenerate  = ErrorCode{Code: 516003, Msg: "AI 生成题目失败，请重试"}
	InvalidInterview  = ErrorCode{Code: 516004, Msg: "岗位名称、描述和技术栈不能为空"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
