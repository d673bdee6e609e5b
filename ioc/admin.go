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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mockmate/internal/ai"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(aiModule *ai.Module) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(AdminPermission(adminUids()))
	aiModule.AdminHdl.PrivateRoutes(res.Engine)
	return res
}

func adminUids() []int64 {
	var uids []int64
	err := econf.UnmarshalKey("admin.uids", &uids)
	if err != nil {
		panic(err)
	}
	return uids
}

// AdminPermission 只有配置了的用户才能访问 admin 接口
func AdminPermission(uids []int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		xctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(xctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			elog.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		uid := sess.Claims().Uid
		if !slice.Contains(uids, uid) {
			ctx.AbortWithStatus(http.StatusForbidden)
			elog.Error("非法访问 admin 接口，未设置权限", elog.Int64("uid", uid))
			return
		}
	}
}
