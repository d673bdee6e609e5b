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

package ai

import (
	"github.com/ecodeclub/mockmate/internal/ai/internal/domain"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm"
	"github.com/ecodeclub/mockmate/internal/ai/internal/web"
)

type LLMRequest = domain.LLMRequest
type LLMResponse = domain.LLMResponse
type LLMService = llm.Service
type AdminHandler = web.AdminHandler

const (
	BizAnswerScore      = domain.BizAnswerScore
	BizQuestionGenerate = domain.BizQuestionGenerate
)
