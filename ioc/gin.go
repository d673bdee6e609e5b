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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mockmate/internal/answer"
	"github.com/ecodeclub/mockmate/internal/interview"
	"github.com/ecodeclub/mockmate/internal/pkg/middleware"
	"github.com/ecodeclub/mockmate/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	itvModule *interview.Module,
	answerModule *answer.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type", "Accept-Language"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "mockmate.dev")
		},
	}))
	metrics := middleware.NewMetricsBuilder("mockmate")
	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		elog.Error("注册 HTTP 指标失败", elog.FieldErr(err))
	}
	res.Use(metrics.Build())
	res.Use(middleware.NewLocaleBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	itvModule.Hdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	itvModule.Hdl.PrivateRoutes(res.Engine)
	answerModule.Hdl.PrivateRoutes(res.Engine)
	return res
}
