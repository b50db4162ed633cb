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

package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"

	"github.com/ecodeclub/careerhub/internal/article/internal/domain"
	"github.com/ecodeclub/careerhub/internal/article/internal/service"
)

type Handler struct {
	svc    service.RecommendationService
	logger *elog.Component
}

func NewHandler(svc service.RecommendationService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api")
	g.GET("/articles", h.List)
	g.POST("/articles/track-click", h.TrackClick)
}

// List 按类目取文章摘要列表，最多 6 篇。
// 复用推荐链路：请求里的每个类目都按薄弱项处理。
func (h *Handler) List(ctx *gin.Context) {
	raw := strings.TrimSpace(ctx.Query("categories"))
	if raw == "" {
		ctx.JSON(http.StatusBadRequest, invalidInputResult)
		return
	}
	scores := slice.Map(strings.Split(raw, ","), func(idx int, cat string) service.CategoryScore {
		return service.CategoryScore{Category: cat, Score: 0}
	})
	arts, err := h.svc.Recommend(ctx, scores)
	if err != nil {
		h.logger.Error("查询文章列表失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, systemErrorResult)
		return
	}
	ctx.JSON(http.StatusOK, ginx.Result{
		Data: ArticleList{
			Articles: slice.Map(arts, func(idx int, art domain.Article) Article {
				return newArticle(art)
			}),
		},
	})
}

func (h *Handler) TrackClick(ctx *gin.Context) {
	var req TrackClickReq
	if err := ctx.Bind(&req); err != nil || req.ArticleId <= 0 {
		ctx.JSON(http.StatusBadRequest, invalidInputResult)
		return
	}
	err := h.svc.TrackClick(ctx, req.ArticleId)
	switch {
	case errors.Is(err, service.ErrArticleNotFound):
		ctx.JSON(http.StatusNotFound, articleNotFoundResult)
	case err != nil:
		h.logger.Error("记录点击失败",
			elog.FieldErr(err),
			elog.Int64("articleId", req.ArticleId))
		ctx.JSON(http.StatusInternalServerError, systemErrorResult)
	default:
		ctx.JSON(http.StatusOK, ginx.Result{
			Data: TrackClickResp{Success: true},
		})
	}
}
