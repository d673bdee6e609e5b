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

package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/mockmate/internal/ai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Handle(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gemini-2.0-flash",
  "choices": [{
    "index": 0,
    "finish_reason": "stop",
    "logprobs": null,
    "message": {"role": "assistant", "content": "{\"ratings\": 8, \"feedback\": \"Clear and specific.\"}", "refusal": ""}
  }],
  "usage": {"prompt_tokens": 1200, "completion_tokens": 300, "total_tokens": 1500}
}`))
	}))
	defer server.Close()

	h := NewHandler(server.URL+"/", "test-key")
	assert.Equal(t, domain.PlatformOpenAI, h.Name())
	resp, err := h.Handle(context.Background(), domain.LLMRequest{
		Prompt: "score this",
		Config: domain.BizConfig{
			Model:        "gemini-2.0-flash",
			Price:        2,
			Temperature:  0,
			TopP:         0.98,
			MaxTokens:    65536,
			SystemPrompt: "you are an interviewer",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LLMResponse{
		Tokens: 1500,
		Amount: 3,
		Answer: `{"ratings": 8, "feedback": "Clear and specific."}`,
	}, resp)

	assert.Equal(t, "gemini-2.0-flash", gotBody["model"])
	assert.Equal(t, float64(0), gotBody["temperature"])
	assert.Equal(t, 0.98, gotBody["top_p"])
	assert.Equal(t, float64(65536), gotBody["max_tokens"])
	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Equal(t, "user", msgs[1].(map[string]any)["role"])
}

func TestHandler_HandleError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "quota exceeded", "type": "rate_limit", "code": "429"}}`))
	}))
	defer server.Close()

	h := NewHandler(server.URL+"/", "test-key")
	_, err := h.Handle(context.Background(), domain.LLMRequest{
		Prompt: "score this",
		Config: domain.BizConfig{Model: "gemini-2.0-flash"},
	})
	assert.Error(t, err)
}
