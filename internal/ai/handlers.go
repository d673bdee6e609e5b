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

package ai

import (
	"errors"
	"os"
	"sync"

	"github.com/ecodeclub/mockmate/internal/ai/internal/domain"
	"github.com/ecodeclub/mockmate/internal/ai/internal/repository"
	"github.com/ecodeclub/mockmate/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler/biz"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler/metrics"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler/platform"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/mockmate/internal/ai/internal/service/llm/handler/record"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
)

// 所有的业务都走同一条链，区别只在于配置
var bizs = []string{domain.BizAnswerScore, domain.BizQuestionGenerate}

func InitHandlerFacade(common []handler.Builder, router *platform.Router) *biz.FacadeHandler {
	bizMap := make(map[string]handler.Handler, len(bizs))
	for _, b := range bizs {
		bizMap[b] = handler.NewCompositionHandler(b, common, router)
	}
	return biz.NewHandler(bizMap)
}

// InitCommonHandlers log -> config -> metrics -> record -> platform
func InitCommonHandlers(log *log.HandlerBuilder,
	cfg *config.HandlerBuilder,
	metrics *metrics.HandlerBuilder,
	record *record.HandlerBuilder) []handler.Builder {
	return []handler.Builder{log, cfg, metrics, record}
}

func InitPlatformRouter() *platform.Router {
	type Config struct {
		DefaultPlatform string `yaml:"defaultPlatform"`
		OpenAI          struct {
			BaseURL string `yaml:"baseURL"`
			APIKey  string `yaml:"apikey"`
		} `yaml:"openai"`
		Zhipu struct {
			APIKey string `yaml:"apikey"`
		} `yaml:"zhipu"`
	}
	var cfg Config
	err := econf.UnmarshalKey("ai", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.DefaultPlatform == "" {
		cfg.DefaultPlatform = domain.PlatformOpenAI
	}
	// 配置文件里面不放 key 的时候从环境变量里面读
	if cfg.OpenAI.APIKey == "" {
		cfg.OpenAI.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Zhipu.APIKey == "" {
		cfg.Zhipu.APIKey = os.Getenv("ZHIPU_API_KEY")
	}
	platforms := map[string]handler.Handler{
		domain.PlatformOpenAI: openai.NewHandler(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey),
	}
	// 智谱的 SDK 没有 key 会直接报错，所以只在配置了的时候启用
	if cfg.Zhipu.APIKey != "" {
		h, err := zhipu.NewHandler(cfg.Zhipu.APIKey)
		if err != nil {
			panic(err)
		}
		platforms[domain.PlatformZhipu] = h
	}
	return platform.NewRouter(cfg.DefaultPlatform, platforms)
}

// InitDefaultConfigs 数据库里面没有配置的业务就用配置文件里面的
func InitDefaultConfigs() repository.DefaultConfigs {
	type BizConfig struct {
		Biz          string  `yaml:"biz"`
		Platform     string  `yaml:"platform"`
		Model        string  `yaml:"model"`
		Price        int64   `yaml:"price"`
		Temperature  float64 `yaml:"temperature"`
		TopP         float64 `yaml:"topP"`
		MaxTokens    int64   `yaml:"maxTokens"`
		SystemPrompt string  `yaml:"systemPrompt"`
		MaxInput     int     `yaml:"maxInput"`
	}
	const key = "ai.bizConfigs"
	if econf.Get(key) == nil {
		return repository.DefaultConfigs{}
	}
	var cfgs []BizConfig
	err := econf.UnmarshalKey(key, &cfgs)
	if err != nil {
		panic(err)
	}
	res := make(repository.DefaultConfigs, len(cfgs))
	for _, c := range cfgs {
		res[c.Biz] = domain.BizConfig{
			Biz:          c.Biz,
			Platform:     c.Platform,
			Model:        c.Model,
			Price:        c.Price,
			Temperature:  c.Temperature,
			TopP:         c.TopP,
			MaxTokens:    c.MaxTokens,
			SystemPrompt: c.SystemPrompt,
			MaxInput:     c.MaxInput,
		}
	}
	return res
}

var (
	metricsOnce    sync.Once
	metricsBuilder *metrics.HandlerBuilder
)

// InitMetricsBuilder 指标只能注册一次
func InitMetricsBuilder() *metrics.HandlerBuilder {
	metricsOnce.Do(func() {
		metricsBuilder = metrics.NewHandlerBuilder("mockmate")
		err := metricsBuilder.Register(prometheus.DefaultRegisterer)
		var are prometheus.AlreadyRegisteredError
		if err != nil && !errors.As(err, &are) {
			elog.DefaultLogger.Error("注册 LLM 指标失败", elog.FieldErr(err))
		}
	})
	return metricsBuilder
}

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitConfigDAO(db *egorm.Component) dao.ConfigDAO {
	InitTableOnce(db)
	return dao.NewGORMConfigDAO(db)
}

func InitLLMRecordDAO(db *egorm.Component) dao.LLMRecordDAO {
	InitTableOnce(db)
	return dao.NewGORMLLMRecordDAO(db)
}
