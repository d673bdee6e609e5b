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

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mockmate/internal/answer/internal/service"
	"github.com/ecodeclub/mockmate/internal/pkg/ectx"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/answer")
	g.POST("/feedback", ginx.BS[FeedbackReq](h.Feedback))

	sg := g.Group("/session")
	sg.POST("/start", ginx.BS[StartReq](h.Start))
	// 浏览器的识别引擎每产生一批片段就调用一次
	sg.POST("/fragment", ginx.BS[FragmentReq](h.Fragment))
	sg.POST("/stop", ginx.BS[SessionReq](h.Stop))
	sg.POST("/restart", ginx.BS[SessionReq](h.Restart))
	sg.POST("/score", ginx.BS[SessionReq](h.Score))
	sg.POST("/save", ginx.BS[SessionReq](h.Save))
	sg.POST("/reset", ginx.BS[SessionReq](h.Reset))
	sg.POST("/state", ginx.BS[SessionReq](h.State))
}

func (h *Handler) Start(ctx *ginx.Context, req StartReq, sess session.Session) (ginx.Result, error) {
	locale := req.Locale
	if locale == "" {
		locale, _ = ectx.LocaleFromCtx(ctx.Request.Context())
	}
	res, err := h.svc.Start(ctx, service.StartRequest{
		Uid:         sess.Claims().Uid,
		InterviewID: req.InterviewId,
		QuestionIdx: req.QuestionIdx,
		Locale:      locale,
	})
	if err != nil {
		return errorResult(err, nil)
	}
	return ginx.Result{Data: newSession(res)}, nil
}

func (h *Handler) Fragment(ctx *ginx.Context, req FragmentReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	var err error
	if req.EngineError != "" {
		err = h.svc.FailEngine(ctx, uid, req.SN, req.EngineError)
	} else {
		err = h.svc.PushFragments(ctx, uid, req.SN, req.Fragments)
	}
	if err != nil {
		return errorResult(err, nil)
	}
	return ginx.Result{}, nil
}

func (h *Handler) Stop(ctx *ginx.Context, req SessionReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Stop(ctx, sess.Claims().Uid, req.SN)
	if err != nil {
		// 回答太短的时候前端要继续展示已经说了的内容
		return errorResult(err, newSession(res))
	}
	return ginx.Result{Data: newSession(res)}, nil
}

func (h *Handler) Restart(ctx *ginx.Context, req SessionReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Restart(ctx, sess.Claims().Uid, req.SN)
	if err != nil {
		return errorResult(err, nil)
	}
	return ginx.Result{Data: newSession(res)}, nil
}

func (h *Handler) Score(ctx *ginx.Context, req SessionReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Score(ctx, sess.Claims().Uid, req.SN)
	if err != nil {
		return errorResult(err, nil)
	}
	return ginx.Result{Data: newScore(res)}, nil
}

func (h *Handler) Save(ctx *ginx.Context, req SessionReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, sess.Claims().Uid, req.SN)
	if err != nil {
		return errorResult(err, nil)
	}
	return ginx.Result{Data: SaveResult{Id: id}}, nil
}

func (h *Handler) Reset(ctx *ginx.Context, req SessionReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Reset(ctx, sess.Claims().Uid, req.SN)
	if err != nil {
		return errorResult(err, nil)
	}
	return ginx.Result{}, nil
}

func (h *Handler) State(ctx *ginx.Context, req SessionReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.State(ctx, sess.Claims().Uid, req.SN)
	if err != nil {
		return errorResult(err, nil)
	}
	return ginx.Result{Data: newSession(res)}, nil
}

func (h *Handler) Feedback(ctx *ginx.Context, req FeedbackReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Feedback(ctx, sess.Claims().Uid, req.InterviewId)
	if err != nil {
		return errorResult(err, nil)
	}
	return ginx.Result{Data: newFeedback(res)}, nil
}
