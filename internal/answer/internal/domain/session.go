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

// State 一次录音会话的状态
//
//	Idle -> Recording -> Stopped -> Scoring -> Scored -> Saved
type State uint8

const (
	StateIdle State = iota
	StateRecording
	StateStopped
	StateScoring
	StateScored
	StateSaved
)

func (s State) String() string {
	switch s {
	case StateRecording:
		return "recording"
	case StateStopped:
		return "stopped"
	case StateScoring:
		return "scoring"
	case StateScored:
		return "scored"
	case StateSaved:
		return "saved"
	default:
		return "idle"
	}
}

// SessionSnapshot 会话在某个时刻的状态，给前端展示用
type SessionSnapshot struct {
	SN          string
	InterviewID int64
	QuestionIdx int
	Question    Question
	Locale      string
	State       State
	Answer      string
	Interim     string
	// 只有 Scored 和 Saved 状态才有
	Score *ScoreResult
	// 最近一次失败的原因，例如 AI 调用失败或者识别引擎出错
	LastErr error
}
