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

package domain

// DefaultName 身份服务没有给出任何名字的时候使用
const DefaultName = "User"

// User 身份服务里面用户的镜像，第一次登录的时候创建
type User struct {
	Id int64
	// 身份服务里面的用户 ID
	ExternalID string
	Name       string
	Email      string
	ImageURL   string
	Ctime      int64
	Utime      int64
}

// Identity 从身份服务的 token 里面解析出来的信息
type Identity struct {
	ExternalID string
	Name       string
	Email      string
	ImageURL   string
}
