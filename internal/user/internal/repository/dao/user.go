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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 同一个身份服务用户并发登录
var ErrUserDuplicate = errors.New("用户已经注册")

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	FindByExternalID(ctx context.Context, externalID string) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindByExternalID(ctx context.Context, externalID string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "external_id = ?", externalID).Error
	return u, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

type User struct {
	Id         int64  `gorm:"primaryKey,autoIncrement"`
	ExternalId string `gorm:"type:varchar(128);unique"`
	Name       string `gorm:"type:varchar(256)"`
	Email      string `gorm:"type:varchar(256)"`
	ImageUrl   string `gorm:"type:varchar(1024)"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

func (User) TableName() string {
	return "users"
}
