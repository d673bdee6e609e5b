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
	"context"
	"fmt"
	"strings"

	"github.com/ecodeclub/mockmate/internal/ai"
	"github.com/ecodeclub/mockmate/internal/interview/internal/domain"
	"github.com/ecodeclub/mockmate/internal/pkg/llmjson"
	"github.com/lithammer/shortuuid/v4"
)

const DefaultQuestionCount = 5

//go:generate mockgen -source=./generator.go -package=svcmocks -destination=./mocks/generator.mock.go -typed QuestionGenerator
type QuestionGenerator interface {
	Generate(ctx context.Context, itv domain.Interview) ([]domain.Question, error)
}

type LLMQuestionGenerator struct {
	svc   ai.LLMService
	count int
}

func NewLLMQuestionGenerator(svc ai.LLMService, count int) *LLMQuestionGenerator {
	if count <= 0 {
		count = DefaultQuestionCount
	}
	return &LLMQuestionGenerator{svc: svc, count: count}
}

type questionPayload struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (g *LLMQuestionGenerator) Generate(ctx context.Context, itv domain.Interview) ([]domain.Question, error) {
	prompt := BuildQuestionPrompt(JobInfo{
		Position:    itv.Position,
		Company:     itv.Company,
		Description: itv.Description,
		Experience:  itv.Experience,
		TechStack:   itv.TechStack,
	}, g.count)
	resp, err := g.svc.Invoke(ctx, ai.LLMRequest{
		Biz:    ai.BizQuestionGenerate,
		Uid:    itv.Uid,
		Tid:    shortuuid.New(),
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuestionGenerate, err)
	}
	items, err := llmjson.All[questionPayload](resp.Answer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuestionGenerate, err)
	}
	res := make([]domain.Question, 0, len(items))
	for i, item := range items {
		q, a := strings.TrimSpace(item.Question), strings.TrimSpace(item.Answer)
		if q == "" || a == "" {
			verr := llmjson.NewValidationError(fmt.Sprintf("[%d]", i), "题目或者答案为空")
			return nil, fmt.Errorf("%w: %w", ErrQuestionGenerate, verr)
		}
		res = append(res, domain.Question{Question: q, Answer: a})
	}
	return res, nil
}
