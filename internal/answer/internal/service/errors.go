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

package service

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/mockmate/internal/pkg/llmjson"
)

var (
	// ErrAnswerTooShort 回答少于 MinAnswerLength 个字符，提示用户继续回答
	ErrAnswerTooShort = errors.New("回答太短")
	// ErrAlreadyAnswered 这道题已经回答过了
	ErrAlreadyAnswered   = errors.New("already answered")
	ErrStaleResponse     = errors.New("评分结果已经过期")
	ErrInvalidTransition = errors.New("非法的状态转换")
	ErrSessionNotFound   = errors.New("录音会话不存在")
	ErrQuestionNotFound  = errors.New("题目不存在")

	// ErrAIRequest 以下几类错误的哨兵，方便 errors.Is 判断
	ErrAIRequest    = errors.New("AI 请求失败")
	ErrPersistence  = errors.New("持久化失败")
	ErrSpeechEngine = errors.New("语音识别引擎出错")

	ErrResponseParse      = llmjson.ErrResponseParse
	ErrResponseValidation = llmjson.ErrResponseValidation
)

// AIRequestError 网络错误、被拒绝或者空响应
type AIRequestError struct {
	Tid   string
	Cause error
}

func (e *AIRequestError) Error() string {
	return fmt.Sprintf("%s tid: %s: %v", ErrAIRequest.Error(), e.Tid, e.Cause)
}

func (e *AIRequestError) Is(target error) bool {
	return target == ErrAIRequest
}

func (e *AIRequestError) Unwrap() error {
	return e.Cause
}

// PersistenceError 写数据库失败，会话保持在 Scored，可以重试
type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s op: %s: %v", ErrPersistence.Error(), e.Op, e.Cause)
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// SpeechEngineError 识别引擎出错，已经识别出来的内容会保留
type SpeechEngineError struct {
	Cause error
}

func (e *SpeechEngineError) Error() string {
	return fmt.Sprintf("%s: %v", ErrSpeechEngine.Error(), e.Cause)
}

func (e *SpeechEngineError) Is(target error) bool {
	return target == ErrSpeechEngine
}

func (e *SpeechEngineError) Unwrap() error {
	return e.Cause
}
