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
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/mockmate/internal/pkg/ectx"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLocaleBuilder(t *testing.T) {
	testCases := []struct {
		name       string
		header     string
		wantCode   int
		wantLocale string
		wantOK     bool
	}{
		{
			name:       "单个语言",
			header:     "zh-CN",
			wantCode:   http.StatusOK,
			wantLocale: "zh-CN",
			wantOK:     true,
		},
		{
			name:       "带权重的列表",
			header:     "en-US,en;q=0.9",
			wantCode:   http.StatusOK,
			wantLocale: "en-US",
			wantOK:     true,
		},
		{
			name:     "没有设置",
			wantCode: http.StatusOK,
		},
		{
			name:     "非法的语言",
			header:   "<script>",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/answer/session/start", nil)
			if tc.header != "" {
				c.Request.Header.Set(localeHeader, tc.header)
			}
			NewLocaleBuilder().Build()(c)
			assert.Equal(t, tc.wantCode, c.Writer.Status())
			locale, ok := ectx.LocaleFromCtx(c.Request.Context())
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantLocale, locale)
		})
	}
}
