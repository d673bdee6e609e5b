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
	"sync"
	"time"
	"unicode/utf8"

	"github.com/ecodeclub/mockmate/internal/answer/internal/domain"
	"github.com/ecodeclub/mockmate/internal/pkg/speech"
)

// MinAnswerLength 回答至少要有这么多个字符才允许停止录音
const MinAnswerLength = 50

// Session 一次录音会话，对应一道题目。
// 所有的状态转换都在 mu 的保护下进行，调用 AI 的时候不持有锁。
type Session struct {
	mu sync.Mutex

	sn          string
	uid         int64
	interviewID int64
	questionIdx int
	question    domain.Question
	locale      string

	state domain.State
	acc   *Accumulator
	// 只有在 Recording 的时候才有
	sub  speech.Subscription
	done chan struct{}

	engine speech.Engine

	// 每次 Restart 或者 Reset 都会加一，用来丢弃过期的评分结果
	generation    uint64
	cancelScoring context.CancelFunc

	score   *domain.ScoreResult
	lastErr error

	activeAt time.Time
}

func newSession(sn string, uid, interviewID int64, idx int,
	q domain.Question, locale string, engine speech.Engine) *Session {
	return &Session{
		sn:          sn,
		uid:         uid,
		interviewID: interviewID,
		questionIdx: idx,
		question:    q,
		locale:      locale,
		state:       domain.StateIdle,
		acc:         NewAccumulator(),
		engine:      engine,
		activeAt:    time.Now(),
	}
}

func (s *Session) SN() string {
	return s.sn
}

// record 开始录音，调用方需要持有锁
func (s *Session) record(ctx context.Context) error {
	sub, err := s.engine.Start(ctx, speech.Config{StreamID: s.sn, Locale: s.locale})
	if err != nil {
		return &SpeechEngineError{Cause: err}
	}
	done := make(chan struct{})
	s.sub = sub
	s.done = done
	s.state = domain.StateRecording
	go func() {
		defer close(done)
		// 识别引擎出错之后就不会再有片段了，已经累积的内容保留在 acc 里面
		if err1 := s.acc.Consume(context.Background(), sub); err1 != nil {
			sub.Unsubscribe()
		}
	}()
	return nil
}

// unsubscribe 停止监听并且等待已经缓冲的片段处理完毕，调用方需要持有锁
func (s *Session) unsubscribe() {
	if s.sub == nil {
		return
	}
	s.sub.Unsubscribe()
	<-s.done
	s.sub = nil
	s.done = nil
}

func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.StateIdle {
		return ErrInvalidTransition
	}
	s.touch()
	return s.record(ctx)
}

// Stop Recording -> Stopped。
// 回答太短的时候继续录音，返回 ErrAnswerTooShort
func (s *Session) Stop(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.StateRecording {
		return "", ErrInvalidTransition
	}
	s.touch()
	s.unsubscribe()
	answer := s.acc.Answer()
	if utf8.RuneCountInString(answer) < MinAnswerLength {
		if s.acc.Err() != nil {
			// 识别引擎已经坏了，只能 Restart
			return answer, ErrAnswerTooShort
		}
		if err := s.record(ctx); err != nil {
			s.state = domain.StateStopped
			s.lastErr = err
			return answer, err
		}
		return answer, ErrAnswerTooShort
	}
	s.state = domain.StateStopped
	s.lastErr = nil
	return answer, nil
}

// Restart 清空已经录下来的回答，重新开始录音
func (s *Session) Restart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.StateSaved {
		return ErrAlreadyAnswered
	}
	s.touch()
	s.unsubscribe()
	s.invalidate()
	s.acc.Reset()
	s.score = nil
	s.lastErr = nil
	s.state = domain.StateIdle
	return s.record(ctx)
}

// Reset 任何状态都可以回到 Idle，正在进行的评分会被取消
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unsubscribe()
	s.invalidate()
	s.acc.Reset()
	s.score = nil
	s.lastErr = nil
	s.state = domain.StateIdle
}

// invalidate 让正在进行中的评分结果过期，调用方需要持有锁
func (s *Session) invalidate() {
	s.generation++
	if s.cancelScoring != nil {
		s.cancelScoring()
		s.cancelScoring = nil
	}
}

// beginScoring Stopped -> Scoring。
// 返回的 generation 要在 finishScoring 的时候带回来
func (s *Session) beginScoring(ctx context.Context) (context.Context, uint64, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.StateStopped {
		return nil, 0, "", ErrInvalidTransition
	}
	s.touch()
	scoreCtx, cancel := context.WithCancel(ctx)
	s.cancelScoring = cancel
	s.state = domain.StateScoring
	s.lastErr = nil
	prompt := BuildScorePrompt(s.question.Text, s.question.ReferenceAnswer, s.acc.Answer())
	return scoreCtx, s.generation, prompt, nil
}

// finishScoring Scoring -> Scored 或者 Scoring -> Stopped
func (s *Session) finishScoring(gen uint64, res domain.ScoreResult, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation || s.state != domain.StateScoring {
		return ErrStaleResponse
	}
	if s.cancelScoring != nil {
		s.cancelScoring()
		s.cancelScoring = nil
	}
	s.touch()
	if err != nil {
		s.state = domain.StateStopped
		s.lastErr = err
		return err
	}
	s.state = domain.StateScored
	s.score = &res
	return nil
}

// answerRecord 调用方需要持有锁
func (s *Session) answerRecord() domain.AnswerRecord {
	var res domain.AnswerRecord
	if s.score != nil {
		res.Rating = s.score.Rating
		res.Feedback = s.score.Feedback
	}
	res.Uid = s.uid
	res.InterviewID = s.interviewID
	res.QuestionKey = s.question.Key()
	res.QuestionText = s.question.Text
	res.ReferenceAnswer = s.question.ReferenceAnswer
	res.CandidateAnswer = s.acc.Answer()
	return res
}

func (s *Session) Snapshot() domain.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := domain.SessionSnapshot{
		SN:          s.sn,
		InterviewID: s.interviewID,
		QuestionIdx: s.questionIdx,
		Question:    s.question,
		Locale:      s.locale,
		State:       s.state,
		Answer:      s.acc.Answer(),
		Interim:     s.acc.Interim(),
		LastErr:     s.lastErr,
	}
	if s.score != nil {
		sc := *s.score
		res.Score = &sc
	}
	if res.LastErr == nil {
		res.LastErr = s.acc.Err()
	}
	return res
}

func (s *Session) touch() {
	s.activeAt = time.Now()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.activeAt)
}
