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
	"net/mail"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"

	"github.com/ecodeclub/careerhub/internal/article"
	"github.com/ecodeclub/careerhub/internal/assessment/internal/domain"
	"github.com/ecodeclub/careerhub/internal/assessment/internal/service"
)

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api")
	g.POST("/assessment", h.Submit)
	g.GET("/assessment/results", h.Results)
}

func (h *Handler) Submit(ctx *gin.Context) {
	var req SubmitReq
	if err := ctx.Bind(&req); err != nil || !h.valid(req) {
		ctx.JSON(http.StatusBadRequest, invalidInputResult)
		return
	}
	res, err := h.svc.Submit(ctx, domain.Assessment{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Scores: slice.Map(req.Scores, func(_ int, src CategoryScore) domain.CategoryScore {
			return domain.CategoryScore{Category: src.Category, Score: src.Score}
		}),
	})
	if err != nil {
		h.logger.Error("提交测评失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, systemErrorResult)
		return
	}
	ctx.JSON(http.StatusOK, ginx.Result{
		Data: newResult(res),
	})
}

func (h *Handler) Results(ctx *gin.Context) {
	ref := strings.TrimSpace(ctx.Query("id"))
	if ref == "" {
		ctx.JSON(http.StatusBadRequest, invalidInputResult)
		return
	}
	res, err := h.svc.Results(ctx, ref)
	switch {
	case errors.Is(err, service.ErrAssessmentNotFound):
		ctx.JSON(http.StatusNotFound, assessmentNotFoundResult)
	case err != nil:
		h.logger.Error("查询测评结果失败",
			elog.FieldErr(err),
			elog.String("ref", ref))
		ctx.JSON(http.StatusInternalServerError, systemErrorResult)
	default:
		ctx.JSON(http.StatusOK, ginx.Result{
			Data: newResult(res),
		})
	}
}

// valid 邮箱必填，每个维度都得是已知类目，得分 0-10
func (h *Handler) valid(req SubmitReq) bool {
	addr := strings.TrimSpace(req.Email)
	if addr == "" {
		return false
	}
	if _, err := mail.ParseAddress(addr); err != nil {
		return false
	}
	if len(req.Scores) == 0 {
		return false
	}
	for _, sc := range req.Scores {
		if sc.Score < 0 || sc.Score > 10 {
			return false
		}
		if _, ok := article.CategoryOf(sc.Category); !ok {
			return false
		}
	}
	return true
}
