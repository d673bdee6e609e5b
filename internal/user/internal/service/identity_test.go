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

package service

import (
	"testing"
	"time"

	"github.com/ecodeclub/mockmate/internal/user/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIdentityVerifier_Verify(t *testing.T) {
	now := time.Unix(1700000000, 0)
	sign := func(t *testing.T, method jwt.SigningMethod, key any, claims IdentityClaims) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}
	valid := IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://idp.example.com",
			Subject:   "user_2abc",
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		ImageURL: "https://img.example.com/ada.png",
	}
	testCases := []struct {
		name    string
		token   func(t *testing.T) string
		wantRes domain.Identity
		wantErr error
	}{
		{
			name: "有效token",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte("key"), valid)
			},
			wantRes: domain.Identity{
				ExternalID: "user_2abc",
				Name:       "Ada Lovelace",
				Email:      "ada@example.com",
				ImageURL:   "https://img.example.com/ada.png",
			},
		},
		{
			name: "token已过期",
			token: func(t *testing.T) string {
				claims := valid
				claims.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Second))
				return sign(t, jwt.SigningMethodHS256, []byte("key"), claims)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "没有过期时间",
			token: func(t *testing.T) string {
				claims := valid
				claims.ExpiresAt = nil
				return sign(t, jwt.SigningMethodHS256, []byte("key"), claims)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "签名错误",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte("another"), valid)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "签发者错误",
			token: func(t *testing.T) string {
				claims := valid
				claims.Issuer = "https://evil.example.com"
				return sign(t, jwt.SigningMethodHS256, []byte("key"), claims)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "算法错误",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS512, []byte("key"), valid)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "没有用户ID",
			token: func(t *testing.T) string {
				claims := valid
				claims.Subject = ""
				return sign(t, jwt.SigningMethodHS256, []byte("key"), claims)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "格式错误",
			token: func(t *testing.T) string {
				return "not-a-token"
			},
			wantErr: ErrInvalidToken,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := NewJWTIdentityVerifier("key", "https://idp.example.com")
			v.nowFunc = func() time.Time {
				return now
			}
			res, err := v.Verify(tc.token(t))
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
