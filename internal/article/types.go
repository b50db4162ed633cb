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
	"github.com/ecodeclub/careerhub/internal/article/internal/domain"
	"github.com/ecodeclub/careerhub/internal/article/internal/job"
	"github.com/ecodeclub/careerhub/internal/article/internal/service"
	"github.com/ecodeclub/careerhub/internal/article/internal/web"
)

// Handler 暴露出去给 ioc 使用
type Handler = web.Handler
type AdminHandler = web.AdminHandler
type ScrapeJob = job.ScrapeJob

type Article = domain.Article

// RecommendationService 给测评模块调用
type RecommendationService = service.RecommendationService
type CategoryScore = service.CategoryScore
type Category = domain.Category

// CategoryOf 类目校验和归一化也暴露给测评模块
var CategoryOf = domain.CategoryOf

type Module struct {
	Hdl       *Handler
	AdminHdl  *AdminHandler
	ScrapeJob *ScrapeJob
	RecSvc    RecommendationService
}
