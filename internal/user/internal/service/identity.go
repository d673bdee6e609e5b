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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/mockmate/internal/user/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("身份服务的 token 无效")

// IdentityVerifier 校验身份服务签发的 token
type IdentityVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// IdentityClaims 身份服务在 token 里面携带的用户资料
type IdentityClaims struct {
	jwt.RegisteredClaims
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"picture"`
}

type JWTIdentityVerifier struct {
	key     string
	issuer  string
	nowFunc func() time.Time
}

// NewJWTIdentityVerifier issuer 为空的时候不校验签发者
func NewJWTIdentityVerifier(key, issuer string) *JWTIdentityVerifier {
	return &JWTIdentityVerifier{
		key:     key,
		issuer:  issuer,
		nowFunc: time.Now,
	}
}

func (v *JWTIdentityVerifier) Verify(token string) (domain.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithTimeFunc(func() time.Time {
			return v.nowFunc()
		}),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	var claims IdentityClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (any, error) {
		return []byte(v.key), nil
	}, opts...)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !t.Valid || claims.Subject == "" {
		return domain.Identity{}, ErrInvalidToken
	}
	return domain.Identity{
		ExternalID: claims.Subject,
		Name:       claims.Name,
		Email:      claims.Email,
		ImageURL:   claims.ImageURL,
	}, nil
}
