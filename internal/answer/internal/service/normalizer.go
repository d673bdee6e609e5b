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
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/ecodeclub/mockmate/internal/answer/internal/domain"
	"github.com/ecodeclub/mockmate/internal/pkg/llmjson"
)

const (
	MinRating = 0
	MaxRating = 10
)

type scorePayload struct {
	Ratings  json.RawMessage `json:"ratings"`
	Feedback json.RawMessage `json:"feedback"`
}

// ParseScore 把 AI 的原始回复转换为 ScoreResult。
// 解析失败返回 *llmjson.ParseError，内容不合法返回 *llmjson.ValidationError。
// 超出范围的分数不会被截断。
func ParseScore(raw string) (domain.ScoreResult, error) {
	payload, err := llmjson.One[scorePayload](raw)
	if err != nil {
		return domain.ScoreResult{}, err
	}
	rating, err := parseRating(payload.Ratings)
	if err != nil {
		return domain.ScoreResult{}, err
	}
	feedback, err := parseFeedback(payload.Feedback)
	if err != nil {
		return domain.ScoreResult{}, err
	}
	return domain.ScoreResult{Rating: rating, Feedback: feedback}, nil
}

func parseRating(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, llmjson.NewValidationError("ratings", "缺失")
	}
	// 只接受 JSON number，"8" 这种字符串不行
	if raw[0] != '-' && (raw[0] < '0' || raw[0] > '9') {
		return 0, llmjson.NewValidationError("ratings", "不是数字")
	}
	val, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, llmjson.NewValidationError("ratings", "不是有限的数字")
	}
	if val != math.Trunc(val) {
		return 0, llmjson.NewValidationError("ratings", "不是整数")
	}
	if val < MinRating || val > MaxRating {
		return 0, llmjson.NewValidationError("ratings", "超出范围 [0, 10]")
	}
	return int(val), nil
}

func parseFeedback(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", llmjson.NewValidationError("feedback", "缺失")
	}
	var feedback string
	if err := json.Unmarshal(raw, &feedback); err != nil {
		return "", llmjson.NewValidationError("feedback", "不是字符串")
	}
	if strings.TrimSpace(feedback) == "" {
		return "", llmjson.NewValidationError("feedback", "为空")
	}
	return feedback, nil
}
