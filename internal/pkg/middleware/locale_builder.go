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

package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mockmate/internal/pkg/ectx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const localeHeader = "Accept-Language"

// 只接受 BCP 47 里面最常见的两段式写法
var localePattern = regexp.MustCompile(`^[a-zA-Z]{2,3}(-[a-zA-Z0-9]{2,8})?$`)

// LocaleBuilder 把浏览器声明的语言放进 context，语音识别会使用这个语言
type LocaleBuilder struct {
}

func NewLocaleBuilder() *LocaleBuilder {
	return &LocaleBuilder{}
}

func (b *LocaleBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader(localeHeader)
		if header == "" {
			return
		}
		// en-US,en;q=0.9 只取第一个
		locale, _, _ := strings.Cut(header, ",")
		locale, _, _ = strings.Cut(locale, ";")
		locale = strings.TrimSpace(locale)
		if !localePattern.MatchString(locale) {
			gctx := &ginx.Context{Context: ctx}
			gctx.AbortWithStatus(http.StatusBadRequest)
			elog.Error("非法的语言设置", elog.String("header", header))
			return
		}
		ctx.Request = ctx.Request.WithContext(ectx.CtxWithLocale(ctx.Request.Context(), locale))
	}
}
