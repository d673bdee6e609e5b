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

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsBuilder(t *testing.T) {
	reg := prometheus.NewRegistry()
	builder := NewMetricsBuilder("mockmate_test")
	require.NoError(t, builder.Register(reg))
	assert.Error(t, builder.Register(reg))

	server := gin.New()
	server.Use(builder.Build())
	server.POST("/answer/session/state", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	for i := 0; i < 3; i++ {
		server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/answer/session/state", nil))
	}
	server.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/not/found", nil))

	assert.Equal(t, float64(3), testutil.ToFloat64(builder.counterVec.WithLabelValues(http.MethodPost, "/answer/session/state", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(builder.counterVec.WithLabelValues(http.MethodPost, "unknown", "404")))
}
