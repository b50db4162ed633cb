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

package article

import (
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/ecodeclub/careerhub/internal/article/internal/job"
	"github.com/ecodeclub/careerhub/internal/article/internal/repository"
	"github.com/ecodeclub/careerhub/internal/article/internal/repository/dao"
	"github.com/ecodeclub/careerhub/internal/article/internal/service"
	"github.com/ecodeclub/careerhub/internal/article/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.ArticleDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMArticleDAO(db)
}

func initScrapeService(repo repository.ArticleRepository) service.ScrapeService {
	type Config struct {
		Timeout time.Duration `yaml:"timeout"`
	}
	var cfg Config
	// 没配就用 NewScrapeService 里的默认值
	_ = econf.UnmarshalKey("scrape", &cfg)
	var client *http.Client
	if cfg.Timeout > 0 {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return service.NewScrapeService(repo, client, newRand())
}

func initRecommendationService(repo repository.ArticleRepository) service.RecommendationService {
	return service.NewRecommendationService(repo, newRand())
}

func initAdminHandler(j *job.ScrapeJob) *web.AdminHandler {
	return web.NewAdminHandler(j, econf.GetString("deploy.secret"))
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
