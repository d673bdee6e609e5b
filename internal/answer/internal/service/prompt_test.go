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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildScorePrompt(t *testing.T) {
	const (
		question  = "Describe a project you are proud of."
		reference = "A concrete project, the candidate's role, and measurable impact."
		candidate = "I worked on a distributed cache service."
	)
	prompt := BuildScorePrompt(question, reference, candidate)
	assert.Equal(t, prompt, BuildScorePrompt(question, reference, candidate))
	assert.Contains(t, prompt, `Question: "`+question+`"`)
	assert.Contains(t, prompt, `User Answer: "`+candidate+`"`)
	assert.Contains(t, prompt, `Correct Answer: "`+reference+`"`)
	assert.Contains(t, prompt, "rating (from 1 to 10)")
	assert.Contains(t, prompt, `"ratings" (number)`)
	assert.Contains(t, prompt, `"feedback" (string)`)

	// 很长的回答也不会被截断
	long := strings.Repeat("cache ", 2000)
	assert.Contains(t, BuildScorePrompt(question, reference, long), long)
}
