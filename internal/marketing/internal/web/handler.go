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

	"github.com/ecodeclub/careerhub/internal/marketing/internal/domain"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/service"
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
	g.POST("/waitlist", h.JoinWaitlist)
	g.POST("/coach-application", h.ApplyAsCoach)
	g.GET("/campaigns", h.ListCampaigns)
}

func (h *Handler) JoinWaitlist(ctx *gin.Context) {
	var req JoinWaitlistReq
	if err := ctx.Bind(&req); err != nil || !validEmail(req.Email) {
		ctx.JSON(http.StatusBadRequest, invalidInputResult)
		return
	}
	_, err := h.svc.JoinWaitlist(ctx, domain.WaitlistEntry{
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Name:  strings.TrimSpace(req.Name),
		Goal:  req.Goal,
	})
	switch {
	case errors.Is(err, service.ErrDuplicatedEmail):
		ctx.JSON(http.StatusConflict, duplicatedEmailResult)
	case err != nil:
		h.logger.Error("加入等候名单失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, systemErrorResult)
	default:
		ctx.JSON(http.StatusOK, ginx.Result{
			Data: JoinWaitlistResp{Success: true},
		})
	}
}

func (h *Handler) ApplyAsCoach(ctx *gin.Context) {
	var req CoachApplicationReq
	if err := ctx.Bind(&req); err != nil || !validEmail(req.Email) || req.Experience < 0 {
		ctx.JSON(http.StatusBadRequest, invalidInputResult)
		return
	}
	_, err := h.svc.ApplyAsCoach(ctx, domain.CoachApplication{
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Name:       strings.TrimSpace(req.Name),
		Specialty:  req.Specialty,
		Experience: req.Experience,
		Bio:        req.Bio,
	})
	switch {
	case errors.Is(err, service.ErrDuplicatedEmail):
		ctx.JSON(http.StatusConflict, duplicatedEmailResult)
	case err != nil:
		h.logger.Error("提交教练申请失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, systemErrorResult)
	default:
		ctx.JSON(http.StatusOK, ginx.Result{
			Data: CoachApplicationResp{Success: true},
		})
	}
}

func (h *Handler) ListCampaigns(ctx *gin.Context) {
	campaigns, err := h.svc.ListCampaigns(ctx)
	if err != nil {
		h.logger.Error("查询活动列表失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, systemErrorResult)
		return
	}
	ctx.JSON(http.StatusOK, ginx.Result{
		Data: CampaignList{
			Campaigns: slice.Map(campaigns, func(idx int, c domain.Campaign) Campaign {
				return newCampaign(c)
			}),
		},
	})
}

func validEmail(addr string) bool {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return false
	}
	_, err := mail.ParseAddress(addr)
	return err == nil
}
