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
	"github.com/ecodeclub/mockmate/internal/user/internal/domain"
	"github.com/ecodeclub/mockmate/internal/user/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	verifier service.IdentityVerifier
	userSvc  service.UserService
	logger   *elog.Component
}

func NewHandler(verifier service.IdentityVerifier, userSvc service.UserService) *Handler {
	return &Handler{
		verifier: verifier,
		userSvc:  userSvc,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("user.handler")),
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/user")
	users.GET("/profile", ginx.S(h.Profile))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/user")
	// 前端在身份服务登录成功之后调用
	users.POST("/profile/sync", ginx.B[SyncReq](h.Sync))
	users.Any("/token/refresh", ginx.W(h.RefreshAccessToken))
}

func (h *Handler) Sync(ctx *ginx.Context, req SyncReq) (ginx.Result, error) {
	identity, err := h.verifier.Verify(req.Token)
	if err != nil {
		h.logger.Warn("身份服务 token 校验失败", elog.FieldErr(err))
		return invalidTokenResult, nil
	}
	u, err := h.userSvc.FindOrCreate(ctx, identity)
	if err != nil {
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, u.Id).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:       u.Id,
		Name:     u.Name,
		Email:    u.Email,
		ImageURL: u.ImageURL,
	}
}
