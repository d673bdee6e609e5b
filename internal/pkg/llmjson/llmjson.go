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

// Package llmjson 从大模型返回的自由文本中提取 JSON。
// 大模型经常在 JSON 外面包一层 markdown 代码块，或者在前后加上一些解释，
// 所以这里按照固定的顺序尝试多种解析方式，任何一种成功就返回。
package llmjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrResponseParse AI 有回复，但是找不到任何可以解析的 JSON
	ErrResponseParse = errors.New("AI 响应无法解析")
	// ErrResponseValidation 解析出了 JSON，但是内容或者结构不符合预期
	ErrResponseValidation = errors.New("AI 响应内容非法")

	errNoCandidate = errors.New("没有找到 JSON 片段")
)

// Cardinality 期望 AI 返回多少个对象
type Cardinality uint8

const (
	// ExactlyOne 只能有一个对象，例如评分
	ExactlyOne Cardinality = iota
	// Many 一个对象数组，例如生成的题目列表
	Many
)

func (c Cardinality) String() string {
	if c == Many {
		return "many"
	}
	return "exactly_one"
}

// ParseError 保留了原始的 AI 响应，方便排查问题
type ParseError struct {
	Raw   string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", ErrResponseParse.Error(), e.Cause)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrResponseParse
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrResponseValidation.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: 字段 %s %s", ErrResponseValidation.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrResponseValidation
}

// NewValidationError 给调用方校验业务字段的时候使用
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// 只去掉首尾的 ```json、``` 或者单个 `，JSON 字符串里面的反引号保持原样
var (
	leadingFence  = regexp.MustCompile("^`{1,3}(?i:json)?\\s*")
	trailingFence = regexp.MustCompile("\\s*`{1,3}$")
)

// Extract 按照以下顺序尝试，每一步都基于原始输入：
//  1. 直接解析
//  2. 去掉首尾的代码块标记之后解析
//  3. 从左到右找顶层的 {...} 或者 [...]，单独解析，失败了就从下一个括号继续找
//
// 都失败了就返回 *ParseError。解析成功之后再按照 card 校验数量。
func Extract(raw string, card Cardinality) ([]json.RawMessage, error) {
	val, err := decode(raw)
	if err != nil {
		return nil, err
	}
	return split(val, card)
}

// One 提取唯一的一个对象并且反序列化为 T
func One[T any](raw string) (T, error) {
	var t T
	items, err := Extract(raw, ExactlyOne)
	if err != nil {
		return t, err
	}
	if err = unmarshalItem(items[0], &t); err != nil {
		return t, err
	}
	return t, nil
}

// All 提取对象数组并且逐个反序列化为 T
func All[T any](raw string) ([]T, error) {
	items, err := Extract(raw, Many)
	if err != nil {
		return nil, err
	}
	res := make([]T, 0, len(items))
	for _, item := range items {
		var t T
		if err = unmarshalItem(item, &t); err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

func unmarshalItem(item json.RawMessage, dst any) error {
	err := json.Unmarshal(item, dst)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return NewValidationError(typeErr.Field, fmt.Sprintf("类型错误，期望 %s，实际是 %s", typeErr.Type, typeErr.Value))
	}
	return &ValidationError{Reason: err.Error()}
}

func decode(raw string) (json.RawMessage, error) {
	lastErr := errNoCandidate
	for _, candidate := range []string{strings.TrimSpace(raw), stripFences(raw)} {
		if candidate == "" {
			continue
		}
		val, err := strictParse(candidate)
		if err == nil {
			return val, nil
		}
		lastErr = err
	}
	// 例如 Rating [8/10]: {...}，第一个括号不是 JSON
	for from := 0; from < len(raw); {
		start, candidate := firstBracketed(raw, from)
		if start < 0 {
			break
		}
		from = start + 1
		if candidate == "" {
			continue
		}
		val, err := strictParse(candidate)
		if err == nil {
			return val, nil
		}
		lastErr = err
	}
	return nil, &ParseError{Raw: raw, Cause: lastErr}
}

// strictParse 只接受对象或者数组，并且不允许尾部有多余的内容
func strictParse(s string) (json.RawMessage, error) {
	if s[0] != '{' && s[0] != '[' {
		return nil, errNoCandidate
	}
	var val json.RawMessage
	if err := json.Unmarshal([]byte(s), &val); err != nil {
		return nil, err
	}
	return val, nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = leadingFence.ReplaceAllString(s, "")
	return trailingFence.ReplaceAllString(s, "")
}

// firstBracketed 从 from 开始找到第一个 { 或者 [，然后找到和它配对的结束符。
// 字符串里面的括号和转义字符不参与计数。
// 返回括号的位置，没有配对的结束符的时候片段为空。
func firstBracketed(s string, from int) (int, string) {
	idx := strings.IndexAny(s[from:], "{[")
	if idx < 0 {
		return -1, ""
	}
	start := from + idx
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		if inString {
			switch ch {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return start, s[start : i+1]
			}
		}
	}
	return start, ""
}

func split(val json.RawMessage, card Cardinality) ([]json.RawMessage, error) {
	val = bytes.TrimSpace(val)
	if val[0] == '{' {
		return []json.RawMessage{val}, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(val, &items); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	switch {
	case len(items) == 0:
		return nil, &ValidationError{Reason: "数组为空"}
	case card == ExactlyOne && len(items) > 1:
		return nil, &ValidationError{Reason: fmt.Sprintf("期望一个对象，实际返回了 %d 个", len(items))}
	}
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, &ValidationError{Reason: fmt.Sprintf("第 %d 个元素不是对象", i)}
		}
		items[i] = item
	}
	return items, nil
}
