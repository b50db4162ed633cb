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
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"

	"github.com/ecodeclub/careerhub/internal/article/internal/job"
)

// AdminHandler 抓取的手动触发入口：运营手动触发和前端发布钩子。
// 和定时任务共用同一个 ScrapeJob，并发保护在任务里。
type AdminHandler struct {
	job *job.ScrapeJob
	// 发布钩子的共享密钥，空表示不校验
	deploySecret string
	logger       *elog.Component
}

func NewAdminHandler(j *job.ScrapeJob, deploySecret string) *AdminHandler {
	return &AdminHandler{
		job:          j,
		deploySecret: deploySecret,
		logger:       elog.DefaultLogger,
	}
}

func (h *AdminHandler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api")
	g.POST("/scrape", h.Scrape)
	g.GET("/deploy-hook", h.DeployHook)
	g.POST("/deploy-hook", h.DeployHook)
}

func (h *AdminHandler) Scrape(ctx *gin.Context) {
	count, err := h.job.RunNow(ctx, ctx.Query("source"))
	switch {
	case errors.Is(err, job.ErrAlreadyRunning):
		ctx.JSON(http.StatusConflict, scrapeRunningResult)
	case err != nil:
		h.logger.Error("手动抓取失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, systemErrorResult)
	default:
		ctx.JSON(http.StatusOK, ginx.Result{
			Data: ScrapeResp{ArticlesProcessed: count},
		})
	}
}

func (h *AdminHandler) DeployHook(ctx *gin.Context) {
	if h.deploySecret != "" {
		secret := ctx.Query("secret")
		if subtle.ConstantTimeCompare([]byte(secret), []byte(h.deploySecret)) != 1 {
			h.logger.Warn("发布钩子密钥不匹配")
			ctx.JSON(http.StatusUnauthorized, unauthorizedResult)
			return
		}
	}
	if skip := ctx.Query("skip"); skip == "true" || skip == "1" {
		ctx.JSON(http.StatusOK, ginx.Result{
			Data: DeployHookResp{Skipped: true},
		})
		return
	}
	count, err := h.job.RunNow(ctx, "")
	switch {
	case errors.Is(err, job.ErrAlreadyRunning):
		ctx.JSON(http.StatusConflict, scrapeRunningResult)
	case err != nil:
		h.logger.Error("发布钩子抓取失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, systemErrorResult)
	default:
		ctx.JSON(http.StatusOK, ginx.Result{
			Data: DeployHookResp{ArticlesProcessed: count},
		})
	}
}
