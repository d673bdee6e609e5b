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
	"fmt"
	"strings"
)

const questionPromptTemplate = `As an experienced prompt engineer, generate a JSON array containing %d technical interview questions along with detailed answers based on the following job information. Each object in the array should have the fields "question" and "answer", formatted as follows:

[
  { "question": "<Question text>", "answer": "<Answer text>" },
  ...
]

Job Information:
- Job Position: %s
- Job Description: %s
- Years of Experience Required: %d
- Tech Stacks: %s
%s
The questions should assess skills in %s development and best practices, problem-solving, and experience handling complex requirements. Please format the output strictly as an array of JSON objects without any additional labels, code blocks, or explanations. Return only the JSON array with questions and answers.`

// JobInfo 生成题目需要的岗位信息
type JobInfo struct {
	Position    string
	Company     string
	Description string
	Experience  int
	TechStack   string
}

// BuildQuestionPrompt 公司名称为空的时候不出现在 prompt 里面
func BuildQuestionPrompt(info JobInfo, count int) string {
	company := ""
	if strings.TrimSpace(info.Company) != "" {
		company = fmt.Sprintf("- Company: %s\n", info.Company)
	}
	return fmt.Sprintf(questionPromptTemplate, count,
		info.Position, info.Description, info.Experience, info.TechStack,
		company, info.TechStack)
}
