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

package user

import (
	"sync"

	"github.com/ecodeclub/mockmate/internal/user/internal/repository/dao"
	"github.com/ecodeclub/mockmate/internal/user/internal/service"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

var initOnce sync.Once

func initDAO(db *egorm.Component) dao.UserDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMUserDAO(db)
}

func initIdentityVerifier() service.IdentityVerifier {
	type Config struct {
		Key    string `yaml:"key"`
		Issuer string `yaml:"issuer"`
	}
	var cfg Config
	err := econf.UnmarshalKey("identity", &cfg)
	if err != nil {
		panic(err)
	}
	return service.NewJWTIdentityVerifier(cfg.Key, cfg.Issuer)
}
