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
	"time"

	"github.com/ecodeclub/mockmate/internal/answer/internal/domain"
	"github.com/ecodeclub/mockmate/internal/answer/internal/event"
	"github.com/ecodeclub/mockmate/internal/answer/internal/repository"
	"github.com/ecodeclub/mockmate/internal/pkg/speech"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

// SpeechEngine 浏览器把识别结果推送过来，所以除了 Start 还要能够推送
type SpeechEngine interface {
	speech.Engine
	Push(ctx context.Context, streamID string, fragments ...speech.Fragment) error
	Fail(streamID string, err error) error
}

type SNGenerator interface {
	Generate(uid int64) string
}

type StartRequest struct {
	Uid         int64
	InterviewID int64
	QuestionIdx int
	Locale      string
}

type Service interface {
	Start(ctx context.Context, req StartRequest) (domain.SessionSnapshot, error)
	PushFragments(ctx context.Context, uid int64, sn string, fragments []speech.Fragment) error
	// FailEngine 浏览器端的识别引擎出错
	FailEngine(ctx context.Context, uid int64, sn string, reason string) error
	Stop(ctx context.Context, uid int64, sn string) (domain.SessionSnapshot, error)
	Restart(ctx context.Context, uid int64, sn string) (domain.SessionSnapshot, error)
	Score(ctx context.Context, uid int64, sn string) (domain.ScoreResult, error)
	Save(ctx context.Context, uid int64, sn string) (int64, error)
	Reset(ctx context.Context, uid int64, sn string) error
	State(ctx context.Context, uid int64, sn string) (domain.SessionSnapshot, error)
	Feedback(ctx context.Context, uid, interviewID int64) (domain.Feedback, error)
	// SweepIdleSessions 清理长时间没有活动的会话
	SweepIdleSessions(ctx context.Context, ttl time.Duration) int
}

type service struct {
	repo      repository.AnswerRepository
	questions QuestionSource
	client    AIClient
	engine    SpeechEngine
	sessions  *SessionManager
	sn        SNGenerator
	producer  event.AnswerEventProducer
	logger    *elog.Component
}

func NewService(repo repository.AnswerRepository,
	questions QuestionSource,
	client AIClient,
	engine SpeechEngine,
	sessions *SessionManager,
	sn SNGenerator,
	producer event.AnswerEventProducer) Service {
	return &service{
		repo:      repo,
		questions: questions,
		client:    client,
		engine:    engine,
		sessions:  sessions,
		sn:        sn,
		producer:  producer,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("answer.service")),
	}
}

func (s *service) Start(ctx context.Context, req StartRequest) (domain.SessionSnapshot, error) {
	q, err := s.questions.Question(ctx, req.Uid, req.InterviewID, req.QuestionIdx)
	if err != nil {
		return domain.SessionSnapshot{}, err
	}
	// 回答过的题目不允许再录音
	exists, err := s.repo.Exists(ctx, req.Uid, req.InterviewID, q.Key())
	if err != nil {
		return domain.SessionSnapshot{}, &PersistenceError{Op: "exists", Cause: err}
	}
	if exists {
		return domain.SessionSnapshot{}, ErrAlreadyAnswered
	}
	locale := req.Locale
	if locale == "" {
		locale = speech.DefaultLocale
	}
	sess := newSession(s.sn.Generate(req.Uid), req.Uid, req.InterviewID, req.QuestionIdx, q, locale, s.engine)
	if err = sess.Start(ctx); err != nil {
		return domain.SessionSnapshot{}, err
	}
	s.sessions.Put(sess)
	return sess.Snapshot(), nil
}

func (s *service) PushFragments(ctx context.Context, uid int64, sn string, fragments []speech.Fragment) error {
	sess, err := s.sessions.Get(uid, sn)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.state != domain.StateRecording || sess.sub == nil {
		return ErrInvalidTransition
	}
	sess.touch()
	if err = s.engine.Push(ctx, sn, fragments...); err != nil {
		return &SpeechEngineError{Cause: err}
	}
	return nil
}

func (s *service) FailEngine(ctx context.Context, uid int64, sn string, reason string) error {
	sess, err := s.sessions.Get(uid, sn)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.state != domain.StateRecording || sess.sub == nil {
		return ErrInvalidTransition
	}
	s.logger.Warn("语音识别引擎出错",
		elog.String("sn", sn),
		elog.Int64("uid", uid),
		elog.String("reason", reason))
	return s.engine.Fail(sn, errors.New(reason))
}

func (s *service) Stop(ctx context.Context, uid int64, sn string) (domain.SessionSnapshot, error) {
	sess, err := s.sessions.Get(uid, sn)
	if err != nil {
		return domain.SessionSnapshot{}, err
	}
	_, err = sess.Stop(ctx)
	if errors.Is(err, ErrAnswerTooShort) {
		s.logger.Debug("回答太短", elog.String("sn", sn))
	}
	return sess.Snapshot(), err
}

func (s *service) Restart(ctx context.Context, uid int64, sn string) (domain.SessionSnapshot, error) {
	sess, err := s.sessions.Get(uid, sn)
	if err != nil {
		return domain.SessionSnapshot{}, err
	}
	err = sess.Restart(ctx)
	return sess.Snapshot(), err
}

func (s *service) Score(ctx context.Context, uid int64, sn string) (domain.ScoreResult, error) {
	sess, err := s.sessions.Get(uid, sn)
	if err != nil {
		return domain.ScoreResult{}, err
	}
	scoreCtx, gen, prompt, err := sess.beginScoring(ctx)
	if err != nil {
		return domain.ScoreResult{}, err
	}
	tid := shortuuid.New()
	var res domain.ScoreResult
	raw, err := s.client.SendPrompt(scoreCtx, uid, tid, prompt)
	if err == nil {
		res, err = ParseScore(raw)
		if err != nil {
			s.logger.Warn("AI 返回的评分结果无法使用",
				elog.String("tid", tid),
				elog.String("sn", sn),
				elog.FieldErr(err))
		}
	}
	err = sess.finishScoring(gen, res, err)
	if errors.Is(err, ErrStaleResponse) {
		s.logger.Info("丢弃过期的评分结果", elog.String("tid", tid), elog.String("sn", sn))
	}
	return res, err
}

func (s *service) Save(ctx context.Context, uid int64, sn string) (int64, error) {
	sess, err := s.sessions.Get(uid, sn)
	if err != nil {
		return 0, err
	}
	id, evt, err := s.persist(ctx, uid, sess)
	if err != nil {
		return 0, err
	}
	// 发送事件的时候不再持有会话锁
	if err1 := s.producer.Produce(ctx, evt); err1 != nil {
		s.logger.Error("发送回答保存事件失败",
			elog.FieldErr(err1),
			elog.Any("event", evt))
	}
	return id, nil
}

// persist 在会话锁内落库，成功之后会话进入 Saved
func (s *service) persist(ctx context.Context, uid int64, sess *Session) (int64, event.AnswerSavedEvent, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	switch sess.state {
	case domain.StateSaved:
		return 0, event.AnswerSavedEvent{}, ErrAlreadyAnswered
	case domain.StateScored:
	default:
		return 0, event.AnswerSavedEvent{}, ErrInvalidTransition
	}
	sess.touch()
	record := sess.answerRecord()
	exists, err := s.repo.Exists(ctx, uid, record.InterviewID, record.QuestionKey)
	if err != nil {
		return 0, event.AnswerSavedEvent{}, &PersistenceError{Op: "exists", Cause: err}
	}
	if exists {
		sess.state = domain.StateSaved
		return 0, event.AnswerSavedEvent{}, ErrAlreadyAnswered
	}
	id, err := s.repo.Create(ctx, record)
	switch {
	case errors.Is(err, repository.ErrDuplicateAnswer):
		// 另外一个会话抢先保存了
		sess.state = domain.StateSaved
		return 0, event.AnswerSavedEvent{}, ErrAlreadyAnswered
	case err != nil:
		return 0, event.AnswerSavedEvent{}, &PersistenceError{Op: "create", Cause: err}
	}
	sess.state = domain.StateSaved
	return id, event.AnswerSavedEvent{
		Uid:         uid,
		InterviewID: record.InterviewID,
		QuestionKey: record.QuestionKey,
		Rating:      record.Rating,
		Ctime:       time.Now().UnixMilli(),
	}, nil
}

func (s *service) Reset(ctx context.Context, uid int64, sn string) error {
	sess, err := s.sessions.Get(uid, sn)
	if err != nil {
		return err
	}
	sess.Reset()
	s.sessions.Remove(sn)
	return nil
}

func (s *service) State(ctx context.Context, uid int64, sn string) (domain.SessionSnapshot, error) {
	sess, err := s.sessions.Get(uid, sn)
	if err != nil {
		return domain.SessionSnapshot{}, err
	}
	return sess.Snapshot(), nil
}

func (s *service) Feedback(ctx context.Context, uid, interviewID int64) (domain.Feedback, error) {
	records, err := s.repo.ListByInterview(ctx, uid, interviewID)
	if err != nil {
		return domain.Feedback{}, &PersistenceError{Op: "list", Cause: err}
	}
	return domain.Feedback{InterviewID: interviewID, Records: records}, nil
}

func (s *service) SweepIdleSessions(ctx context.Context, ttl time.Duration) int {
	return s.sessions.Sweep(time.Now(), ttl)
}
