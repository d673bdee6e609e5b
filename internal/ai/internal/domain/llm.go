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

package domain

import "unicode/utf8"

const (
	// BizAnswerScore 给候选人的回答打分
	BizAnswerScore = "answer_score"
	// BizQuestionGenerate 根据面试配置生成题目
	BizQuestionGenerate = "question_generate"
)

const (
	PlatformOpenAI = "openai"
	PlatformZhipu  = "zhipu"
)

type LLMRequest struct {
	Biz string
	Uid int64
	// 请求id
	Tid string
	// 已经拼接好的完整 prompt
	Prompt string
	// 业务相关的配置，由 config 这个 handler 填充
	Config BizConfig
}

// InputLen 按照字符计算，不是 token
func (req LLMRequest) InputLen() int {
	return utf8.RuneCountInString(req.Prompt)
}

type LLMResponse struct {
	// 花费的token
	Tokens int64
	// 花费的金额，分
	Amount int64
	// llm 的回答
	Answer string
}

type BizConfig struct {
	Id  int64
	Biz string
	// 使用哪个平台，为空的时候使用默认平台
	Platform string
	// 使用的模型
	Model string
	// 多少分钱/1000 token
	Price int64

	Temperature float64
	TopP        float64
	// 0 表示不限制
	MaxTokens int64

	// 系统 Prompt
	SystemPrompt string
	// 允许的最长输入，0 表示不限制
	// 这里不计算 token，只是简单约束一下字符串长度
	MaxInput int
	Utime    int64
}

type LLMRecord struct {
	Id       int64
	Tid      string
	Uid      int64
	Biz      string
	Platform string
	Model    string
	Tokens   int64
	Amount   int64
	Prompt   string
	Status   RecordStatus
	Answer   string
	// 失败原因
	Reason string
	Ctime  int64
	Utime  int64
}

type RecordStatus uint8

func (g RecordStatus) ToUint8() uint8 {
	return uint8(g)
}

func (g RecordStatus) String() string {
	switch g {
	case RecordStatusSuccess:
		return "success"
	case RecordStatusFailed:
		return "failed"
	default:
		return "processing"
	}
}

const (
	RecordStatusProcessing RecordStatus = 0
	RecordStatusSuccess    RecordStatus = 1
	RecordStatusFailed     RecordStatus = 2
)
