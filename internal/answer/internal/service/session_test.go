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
	"errors"
	"strings"
	"testing"

	"github.com/ecodeclub/mockmate/internal/answer/internal/domain"
	"github.com/ecodeclub/mockmate/internal/pkg/speech"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testQuestion = domain.Question{
	Text:            "Describe a project you are proud of.",
	ReferenceAnswer: "A concrete project, the candidate's role, and measurable impact.",
}

func startTestSession(t *testing.T, engine *speech.PushEngine, sn string) *Session {
	sess := newSession(sn, 1, 2, 0, testQuestion, speech.DefaultLocale, engine)
	require.NoError(t, sess.Start(context.Background()))
	return sess
}

func TestSession_StopLengthGuard(t *testing.T) {
	testCases := []struct {
		name      string
		answer    string
		wantErr   error
		wantState domain.State
	}{
		{
			name:      "49 个字符",
			answer:    strings.Repeat("a", MinAnswerLength-1),
			wantErr:   ErrAnswerTooShort,
			wantState: domain.StateRecording,
		},
		{
			name:      "50 个字符",
			answer:    strings.Repeat("a", MinAnswerLength),
			wantState: domain.StateStopped,
		},
		{
			name:      "按照字符而不是字节计算",
			answer:    strings.Repeat("答", MinAnswerLength),
			wantState: domain.StateStopped,
		},
		{
			name:      "没有回答",
			answer:    "",
			wantErr:   ErrAnswerTooShort,
			wantState: domain.StateRecording,
		},
	}
	engine := speech.NewPushEngine()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			sess := startTestSession(t, engine, tc.name)
			defer sess.Reset()
			if tc.answer != "" {
				require.NoError(t, engine.Push(ctx, tc.name, speech.Fragment{Text: tc.answer, IsFinal: true}))
			}
			answer, err := sess.Stop(ctx)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.answer, answer)
			snapshot := sess.Snapshot()
			assert.Equal(t, tc.wantState, snapshot.State)
			assert.Equal(t, tc.answer, snapshot.Answer)
		})
	}
}

func TestSession_ContinueAfterTooShort(t *testing.T) {
	ctx := context.Background()
	engine := speech.NewPushEngine()
	sess := startTestSession(t, engine, "continue")
	defer sess.Reset()

	require.NoError(t, engine.Push(ctx, "continue", speech.Fragment{Text: "I worked on a cache.", IsFinal: true}))
	_, err := sess.Stop(ctx)
	require.ErrorIs(t, err, ErrAnswerTooShort)

	// 还在录音，可以继续说
	require.NoError(t, engine.Push(ctx, "continue",
		speech.Fragment{Text: "It served millions of requests per day.", IsFinal: true}))
	answer, err := sess.Stop(ctx)
	require.NoError(t, err)
	assert.Equal(t, "I worked on a cache. It served millions of requests per day.", answer)
	assert.Equal(t, domain.StateStopped, sess.Snapshot().State)
}

func TestSession_EngineError(t *testing.T) {
	ctx := context.Background()
	engine := speech.NewPushEngine()
	sess := startTestSession(t, engine, "engine-err")
	defer sess.Reset()

	require.NoError(t, engine.Push(ctx, "engine-err", speech.Fragment{Text: "I worked on", IsFinal: true}))
	engineErr := errors.New("not-allowed")
	require.NoError(t, engine.Fail("engine-err", engineErr))

	_, err := sess.Stop(ctx)
	assert.ErrorIs(t, err, ErrAnswerTooShort)
	snapshot := sess.Snapshot()
	assert.Equal(t, domain.StateRecording, snapshot.State)
	assert.Equal(t, "I worked on", snapshot.Answer)
	assert.ErrorIs(t, snapshot.LastErr, ErrSpeechEngine)

	// Restart 之后可以重新录音
	require.NoError(t, sess.Restart(ctx))
	snapshot = sess.Snapshot()
	assert.Equal(t, domain.StateRecording, snapshot.State)
	assert.Equal(t, "", snapshot.Answer)
	assert.NoError(t, snapshot.LastErr)
	assert.NoError(t, engine.Push(ctx, "engine-err", speech.Fragment{Text: "again", IsFinal: true}))
}

func TestSession_InvalidTransition(t *testing.T) {
	ctx := context.Background()
	engine := speech.NewPushEngine()
	sess := newSession("invalid", 1, 2, 0, testQuestion, speech.DefaultLocale, engine)

	_, err := sess.Stop(ctx)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, _, _, err = sess.beginScoring(ctx)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, sess.Start(ctx))
	defer sess.Reset()
	assert.ErrorIs(t, sess.Start(ctx), ErrInvalidTransition)
	_, _, _, err = sess.beginScoring(ctx)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSession_Scoring(t *testing.T) {
	ctx := context.Background()
	engine := speech.NewPushEngine()
	answer := strings.Repeat("b", MinAnswerLength)

	stopped := func(t *testing.T, sn string) *Session {
		sess := startTestSession(t, engine, sn)
		require.NoError(t, engine.Push(ctx, sn, speech.Fragment{Text: answer, IsFinal: true}))
		_, err := sess.Stop(ctx)
		require.NoError(t, err)
		return sess
	}

	t.Run("评分成功", func(t *testing.T) {
		sess := stopped(t, "score-ok")
		_, gen, prompt, err := sess.beginScoring(ctx)
		require.NoError(t, err)
		assert.Equal(t, BuildScorePrompt(testQuestion.Text, testQuestion.ReferenceAnswer, answer), prompt)
		assert.Equal(t, domain.StateScoring, sess.Snapshot().State)

		res := domain.ScoreResult{Rating: 8, Feedback: "Clear and specific."}
		require.NoError(t, sess.finishScoring(gen, res, nil))
		snapshot := sess.Snapshot()
		assert.Equal(t, domain.StateScored, snapshot.State)
		assert.Equal(t, &res, snapshot.Score)
	})

	t.Run("评分失败回到 Stopped", func(t *testing.T) {
		sess := stopped(t, "score-failed")
		_, gen, _, err := sess.beginScoring(ctx)
		require.NoError(t, err)
		aiErr := &AIRequestError{Tid: "tid", Cause: errors.New("rate limited")}
		assert.Equal(t, aiErr, sess.finishScoring(gen, domain.ScoreResult{}, aiErr))
		snapshot := sess.Snapshot()
		assert.Equal(t, domain.StateStopped, snapshot.State)
		assert.ErrorIs(t, snapshot.LastErr, ErrAIRequest)
		assert.Nil(t, snapshot.Score)

		// 可以重试
		_, gen, _, err = sess.beginScoring(ctx)
		require.NoError(t, err)
		require.NoError(t, sess.finishScoring(gen, domain.ScoreResult{Rating: 5, Feedback: "ok"}, nil))
		assert.Equal(t, domain.StateScored, sess.Snapshot().State)
	})

	t.Run("Reset 之后的结果被丢弃", func(t *testing.T) {
		sess := stopped(t, "score-stale")
		scoreCtx, gen, _, err := sess.beginScoring(ctx)
		require.NoError(t, err)
		sess.Reset()
		// 正在进行的调用被取消了
		assert.ErrorIs(t, scoreCtx.Err(), context.Canceled)
		err = sess.finishScoring(gen, domain.ScoreResult{Rating: 9, Feedback: "late"}, nil)
		assert.ErrorIs(t, err, ErrStaleResponse)
		snapshot := sess.Snapshot()
		assert.Equal(t, domain.StateIdle, snapshot.State)
		assert.Nil(t, snapshot.Score)
	})
}
