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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mockmate/internal/answer/internal/errs"
	"github.com/ecodeclub/mockmate/internal/answer/internal/service"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

func codeResult(code errs.ErrorCode, data any) ginx.Result {
	return ginx.Result{Code: code.Code, Msg: code.Msg, Data: data}
}

// errorResult 业务错误都可以由用户重试，所以不作为 error 返回
func errorResult(err error, data any) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrAnswerTooShort):
		return codeResult(errs.AnswerTooShort, data), nil
	case errors.Is(err, service.ErrAlreadyAnswered):
		return codeResult(errs.AlreadyAnswered, data), nil
	case errors.Is(err, service.ErrAIRequest):
		return codeResult(errs.AIRequestFailed, data), nil
	case errors.Is(err, service.ErrResponseParse):
		return codeResult(errs.AIResponseParse, data), nil
	case errors.Is(err, service.ErrResponseValidation):
		return codeResult(errs.AIResponseInvalid, data), nil
	case errors.Is(err, service.ErrPersistence):
		return codeResult(errs.PersistenceFailed, data), nil
	case errors.Is(err, service.ErrSpeechEngine):
		return codeResult(errs.SpeechEngineFailed, data), nil
	case errors.Is(err, service.ErrSessionNotFound):
		return codeResult(errs.SessionNotFound, data), nil
	case errors.Is(err, service.ErrInvalidTransition):
		return codeResult(errs.InvalidTransition, data), nil
	case errors.Is(err, service.ErrStaleResponse):
		return codeResult(errs.StaleResponse, data), nil
	case errors.Is(err, service.ErrQuestionNotFound):
		return codeResult(errs.QuestionNotFound, data), nil
	default:
		return systemErrorResult, err
	}
}
