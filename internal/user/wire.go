//go:build wireinject

package user

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mockmate/internal/user/internal/repository"
	"github.com/ecodeclub/mockmate/internal/user/internal/repository/cache"
	"github.com/ecodeclub/mockmate/internal/user/internal/service"
	"github.com/ecodeclub/mockmate/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(web.NewHandler,
	cache.NewUserECache,
	initDAO,
	initIdentityVerifier,
	service.NewUserService,
	repository.NewCachedUserRepository)

func InitHandler(db *egorm.Component, ec ecache.Cache) *Handler {
	wire.Build(ProviderSet)
	return new(Handler)
}
