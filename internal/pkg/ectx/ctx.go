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

package ectx

import "context"

type localeContextType string

var localeCtxKey localeContextType = "locale"

// LocaleFromCtx 取出请求方声明的语言，例如 en-US
func LocaleFromCtx(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(localeCtxKey).(string)
	return val, ok && val != ""
}

func CtxWithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeCtxKey, locale)
}
