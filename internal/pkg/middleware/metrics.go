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
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder HTTP 请求的耗时和次数
type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

func NewMetricsBuilder(namespace string) *MetricsBuilder {
	labels := []string{"method", "path", "status_code"}
	summaryVec := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.005,
				0.99: 0.001,
			},
		}, labels)
	counterVec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, labels)
	return &MetricsBuilder{
		summaryVec: summaryVec,
		counterVec: counterVec,
	}
}

// Register 注册到 reg 上，重复注册会返回 error
func (a *MetricsBuilder) Register(reg prometheus.Registerer) error {
	if err := reg.Register(a.summaryVec); err != nil {
		return err
	}
	return reg.Register(a.counterVec)
}

func (a *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		duration := time.Since(start).Seconds()

		method := ctx.Request.Method
		// 用路由模板，避免路径参数把 label 撑爆
		path := ctx.FullPath()
		if path == "" {
			path = "unknown"
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())
		a.summaryVec.WithLabelValues(method, path, statusCode).Observe(duration)
		a.counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
