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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQuestionPrompt(t *testing.T) {
	info := JobInfo{
		Position:    "Backend Engineer",
		Description: "Build and operate distributed storage.",
		Experience:  3,
		TechStack:   "Go, MySQL, Redis",
	}
	prompt := BuildQuestionPrompt(info, 5)
	assert.Contains(t, prompt, "containing 5 technical interview questions")
	assert.Contains(t, prompt, "- Job Position: Backend Engineer\n")
	assert.Contains(t, prompt, "- Job Description: Build and operate distributed storage.\n")
	assert.Contains(t, prompt, "- Years of Experience Required: 3\n")
	assert.Contains(t, prompt, "- Tech Stacks: Go, MySQL, Redis\n")
	assert.Contains(t, prompt, "skills in Go, MySQL, Redis development")
	assert.NotContains(t, prompt, "- Company:")

	info.Company = "ecodeclub"
	assert.Contains(t, BuildQuestionPrompt(info, 5), "- Company: ecodeclub\n")
}
