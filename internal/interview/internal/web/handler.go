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
	"errors"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mockmate/internal/interview/internal/domain"
	"github.com/ecodeclub/mockmate/internal/interview/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const maxListLimit = 100

type Handler struct {
	svc    service.InterviewService
	logger *elog.Component
}

func NewHandler(svc service.InterviewService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("interview.handler")),
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/interview")
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/detail", ginx.BS[DetailReq](h.Detail))
	g.POST("/list", ginx.BS[ListReq](h.List))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	itv := req.Interview
	if strings.TrimSpace(itv.Position) == "" ||
		strings.TrimSpace(itv.Description) == "" ||
		strings.TrimSpace(itv.TechStack) == "" ||
		itv.Experience < 0 {
		return invalidInterviewResult, nil
	}
	res, err := h.svc.Save(ctx, domain.Interview{
		Id:          itv.Id,
		Uid:         sess.Claims().Uid,
		Position:    strings.TrimSpace(itv.Position),
		Company:     strings.TrimSpace(itv.Company),
		Description: strings.TrimSpace(itv.Description),
		Experience:  itv.Experience,
		TechStack:   strings.TrimSpace(itv.TechStack),
	}, req.Regenerate)
	switch {
	case err == nil:
		return ginx.Result{Data: newInterview(res)}, nil
	case errors.Is(err, service.ErrInterviewNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrQuestionGenerate):
		// 用户可以重试，不当作系统错误
		h.logger.Warn("生成题目失败", elog.FieldErr(err), elog.Int64("uid", sess.Claims().Uid))
		return questionGenerateResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Detail(ctx, sess.Claims().Uid, req.Id)
	switch {
	case err == nil:
		return ginx.Result{Data: newInterview(res)}, nil
	case errors.Is(err, service.ErrInterviewNotFound):
		return notFoundResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > maxListLimit {
		req.Limit = maxListLimit
	}
	if req.Offset < 0 {
		req.Offset = 0
	}
	itvs, total, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total: total,
			Interviews: slice.Map(itvs, func(idx int, src domain.Interview) Interview {
				return newInterview(src)
			}),
		},
	}, nil
}
