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

package platform

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ecodeclub/mockmate/internal/ai/internal/domain"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler"
)

var ErrUnknownPlatform = errors.New("未知的平台")

// Router 根据业务配置选择真正的出口
type Router struct {
	platforms       map[string]handler.Handler
	defaultPlatform string
}

func NewRouter(defaultPlatform string, platforms map[string]handler.Handler) *Router {
	return &Router{
		platforms:       platforms,
		defaultPlatform: defaultPlatform,
	}
}

func (r *Router) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	name := req.Config.Platform
	if name == "" {
		name = r.defaultPlatform
	}
	h, ok := r.platforms[name]
	if !ok {
		return domain.LLMResponse{}, fmt.Errorf("%w: %s", ErrUnknownPlatform, name)
	}
	req.Config.Platform = name
	return h.Handle(ctx, req)
}

// Amount 现在的报价都是 N 分/1k token，向上取整
func Amount(tokens, price int64) int64 {
	return int64(math.Ceil(float64(tokens*price) / float64(1000)))
}

var _ handler.Handler = &Router{}
