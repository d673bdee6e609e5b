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

import "fmt"

const scorePromptTemplate = `Question: "%s"
User Answer: "%s"
Correct Answer: "%s"
Please compare the user's answer to the correct answer, and provide a rating (from 1 to 10) based on answer quality, and offer feedback for improvement.
Return the result in JSON format with the fields "ratings" (number) and "feedback" (string).`

// BuildScorePrompt 纯函数，相同的输入一定得到相同的 prompt。
// 三段内容原样嵌入，不做转义。
func BuildScorePrompt(question, referenceAnswer, candidateAnswer string) string {
	return fmt.Sprintf(scorePromptTemplate, question, candidateAnswer, referenceAnswer)
}
