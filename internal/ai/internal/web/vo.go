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

type Config struct {
	Id           int64   `json:"id"`
	Biz          string  `json:"biz"`
	Platform     string  `json:"platform"`
	Model        string  `json:"model"`
	Price        int64   `json:"price"`
	Temperature  float64 `json:"temperature"`
	TopP         float64 `json:"topP"`
	MaxTokens    int64   `json:"maxTokens"`
	SystemPrompt string  `json:"systemPrompt"`
	MaxInput     int     `json:"maxInput"`
	Utime        int64   `json:"utime"`
}

type ConfigRequest struct {
	Config Config `json:"config"`
}

type ConfigInfoReq struct {
	Biz string `json:"biz"`
}
