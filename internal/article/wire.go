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

//go:build wireinject

package article

import (
	"github.com/ecodeclub/careerhub/internal/article/internal/job"
	"github.com/ecodeclub/careerhub/internal/article/internal/repository"
	"github.com/ecodeclub/careerhub/internal/article/internal/repository/cache"
	"github.com/ecodeclub/careerhub/internal/article/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		initDAO,
		cache.NewArticleECache,
		repository.NewCachedArticleRepository,
		initScrapeService,
		initRecommendationService,
		web.NewHandler,
		initAdminHandler,
		job.NewScrapeJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
