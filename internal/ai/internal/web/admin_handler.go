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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mockmate/internal/ai/internal/domain"
	"github.com/ecodeclub/mockmate/internal/ai/internal/errs"
	"github.com/ecodeclub/mockmate/internal/ai/internal/repository"
	"github.com/gin-gonic/gin"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

// AdminHandler 调整每个业务使用的模型和生成参数
type AdminHandler struct {
	repo repository.ConfigRepository
}

func NewAdminHandler(repo repository.ConfigRepository) *AdminHandler {
	return &AdminHandler{
		repo: repo,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	admin := server.Group("/ai/config")
	admin.POST("/save", ginx.B[ConfigRequest](h.Save))
	admin.POST("/detail", ginx.B[ConfigInfoReq](h.Detail))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req ConfigRequest) (ginx.Result, error) {
	id, err := h.repo.Save(ctx, domain.BizConfig{
		Id:           req.Config.Id,
		Biz:          req.Config.Biz,
		Platform:     req.Config.Platform,
		Model:        req.Config.Model,
		Price:        req.Config.Price,
		Temperature:  req.Config.Temperature,
		TopP:         req.Config.TopP,
		MaxTokens:    req.Config.MaxTokens,
		SystemPrompt: req.Config.SystemPrompt,
		MaxInput:     req.Config.MaxInput,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req ConfigInfoReq) (ginx.Result, error) {
	cfg, err := h.repo.GetConfig(ctx, req.Biz)
	if errors.Is(err, repository.ErrBizConfigNotFound) {
		return ginx.Result{
			Code: errs.BizConfigNotFound.Code,
			Msg:  errs.BizConfigNotFound.Msg,
		}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.domainToConfig(cfg),
	}, nil
}

func (h *AdminHandler) domainToConfig(cfg domain.BizConfig) Config {
	return Config{
		Id:           cfg.Id,
		Biz:          cfg.Biz,
		Platform:     cfg.Platform,
		Model:        cfg.Model,
		Price:        cfg.Price,
		Temperature:  cfg.Temperature,
		TopP:         cfg.TopP,
		MaxTokens:    cfg.MaxTokens,
		SystemPrompt: cfg.SystemPrompt,
		MaxInput:     cfg.MaxInput,
		Utime:        cfg.Utime,
	}
}
