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

package llmjson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func TestExtract(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		card    Cardinality
		wantRes []string
		wantErr error
	}{
		{
			name:    "直接解析",
			raw:     `{"a": 1}`,
			card:    ExactlyOne,
			wantRes: []string{`{"a": 1}`},
		},
		{
			name:    "前后有空白",
			raw:     "\n\t {\"a\": 1}  \n",
			card:    ExactlyOne,
			wantRes: []string{`{"a": 1}`},
		},
		{
			name:    "json 代码块",
			raw:     "```json\n{\"a\": 1}\n```",
			card:    ExactlyOne,
			wantRes: []string{`{"a": 1}`},
		},
		{
			name:    "大写 JSON 代码块",
			raw:     "```JSON\n{\"a\": 1}\n```",
			card:    ExactlyOne,
			wantRes: []string{`{"a": 1}`},
		},
		{
			name:    "单个反引号",
			raw:     "`{\"a\": 1}`",
			card:    ExactlyOne,
			wantRes: []string{`{"a": 1}`},
		},
		{
			name:    "前后有解释",
			raw:     "Sure! Here is the evaluation: {\"a\": {\"b\": \"}\"}} Hope it helps.",
			card:    ExactlyOne,
			wantRes: []string{`{"a": {"b": "}"}}`},
		},
		{
			name:    "代码块加解释",
			raw:     "Here you go:\n```json\n[{\"a\": 1}, {\"a\": 2}]\n```\nThanks",
			card:    Many,
			wantRes: []string{`{"a": 1}`, `{"a": 2}`},
		},
		{
			name:    "只有一个元素的数组",
			raw:     `[{"a": 1}]`,
			card:    ExactlyOne,
			wantRes: []string{`{"a": 1}`},
		},
		{
			name:    "Many 接受单个对象",
			raw:     `{"a": 1}`,
			card:    Many,
			wantRes: []string{`{"a": 1}`},
		},
		{
			name:    "字符串里面有转义引号",
			raw:     `result: {"a": "say \"hi\" ]"} end`,
			card:    ExactlyOne,
			wantRes: []string{`{"a": "say \"hi\" ]"}`},
		},
		{
			name:    "第一个括号不是 JSON",
			raw:     "Rating [8/10]: {\"ratings\": 8}",
			card:    ExactlyOne,
			wantRes: []string{`{"ratings": 8}`},
		},
		{
			name:    "代码块里面的字符串有反引号",
			raw:     "```json\n{\"a\": \"use `sync.Mutex`\"}\n```",
			card:    ExactlyOne,
			wantRes: []string{"{\"a\": \"use `sync.Mutex`\"}"},
		},
		{
			name:    "没有 JSON",
			raw:     "no json here",
			card:    ExactlyOne,
			wantErr: ErrResponseParse,
		},
		{
			name:    "空字符串",
			raw:     "",
			card:    ExactlyOne,
			wantErr: ErrResponseParse,
		},
		{
			name:    "括号不配对",
			raw:     `{"a": 1`,
			card:    ExactlyOne,
			wantErr: ErrResponseParse,
		},
		{
			name:    "多个元素但是只要一个",
			raw:     `[{"a": 1}, {"a": 2}]`,
			card:    ExactlyOne,
			wantErr: ErrResponseValidation,
		},
		{
			name:    "空数组",
			raw:     `[]`,
			card:    Many,
			wantErr: ErrResponseValidation,
		},
		{
			name:    "数组元素不是对象",
			raw:     `[1, 2]`,
			card:    Many,
			wantErr: ErrResponseValidation,
		},
		{
			name:    "顶层是字符串",
			raw:     `"just a string"`,
			card:    ExactlyOne,
			wantErr: ErrResponseParse,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Extract(tc.raw, tc.card)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			got := make([]string, 0, len(res))
			for _, r := range res {
				got = append(got, string(r))
			}
			assert.Equal(t, tc.wantRes, got)
		})
	}
}

func TestExtract_ParseErrorKeepsRaw(t *testing.T) {
	const raw = "the model refused to answer"
	_, err := Extract(raw, ExactlyOne)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, raw, pe.Raw)
	assert.NotErrorIs(t, err, ErrResponseValidation)
}

func TestAll(t *testing.T) {
	raw := "```json\n" + `[
  {"question": "What is a goroutine?", "answer": "A lightweight thread."},
  {"question": "What is a channel?", "answer": "A typed conduit."}
]` + "\n```"
	res, err := All[item](raw)
	require.NoError(t, err)
	assert.Equal(t, []item{
		{Question: "What is a goroutine?", Answer: "A lightweight thread."},
		{Question: "What is a channel?", Answer: "A typed conduit."},
	}, res)

	_, err = All[item](`[{"question": 1, "answer": "x"}]`)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "question", ve.Field)
}

func TestOne_RoundTrip(t *testing.T) {
	type score struct {
		Ratings  int    `json:"ratings"`
		Feedback string `json:"feedback"`
	}
	feedbacks := []string{
		"keep practicing",
		"Use `sync.Mutex` to guard the map.",
		"Wrap with ```json markers",
		"Ends with a backtick `",
		"Mention {braces} and [brackets] like map[string]int{}",
		`He said "use channels" \ not locks`,
		"回答覆盖了要点，但是缺少对 GC 的讨论。",
		"```",
	}
	wrappers := []func(string) string{
		func(s string) string { return s },
		func(s string) string { return "```json\n" + s + "\n```" },
		func(s string) string { return "```\n" + s + "\n```" },
		func(s string) string { return "`" + s + "`" },
		func(s string) string { return "Here is my evaluation:\n```json\n" + s + "\n```\nGood luck!" },
	}
	for r := 0; r <= 10; r++ {
		for _, fb := range feedbacks {
			want := score{Ratings: r, Feedback: fb}
			data, err := json.Marshal(want)
			require.NoError(t, err)
			for i, wrap := range wrappers {
				got, err := One[score](wrap(string(data)))
				require.NoError(t, err, "wrapper %d, feedback %q", i, fb)
				assert.Equal(t, want, got, "wrapper %d", i)
			}
		}
	}
}
