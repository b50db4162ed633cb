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
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ecodeclub/careerhub/internal/assessment/internal/domain"
	"github.com/ecodeclub/careerhub/internal/assessment/internal/service"
	svcmocks "github.com/ecodeclub/careerhub/internal/assessment/internal/service/mocks"
)

func newTestServer(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	NewHandler(svc).PublicRoutes(server)
	return server
}

func TestHandler_Submit(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		body     string
		wantCode int
	}{
		{
			name: "提交成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					Return(service.Result{
						Assessment: domain.Assessment{
							Id:    1001,
							Token: "KwSysDpxcBU9FNhGkn2dCf",
							Email: "tom@example.com",
						},
					}, nil)
				return svc
			},
			body:     `{"name":"Tom","email":"tom@example.com","scores":[{"category":"Career","score":6},{"category":"Balance","score":4}]}`,
			wantCode: http.StatusOK,
		},
		{
			name: "缺少得分返回400",
			mock: func(ctrl *gomock.Controller) service.Service {
				// 不应该打到 service
				return svcmocks.NewMockService(ctrl)
			},
			body:     `{"name":"Tom","email":"tom@example.com","scores":[]}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "得分超出范围返回400",
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			body:     `{"email":"tom@example.com","scores":[{"category":"Career","score":11}]}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "未知类目返回400",
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			body:     `{"email":"tom@example.com","scores":[{"category":"astrology","score":5}]}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "非法邮箱返回400",
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			body:     `{"email":"not-an-email","scores":[{"category":"Career","score":5}]}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newTestServer(tc.mock(ctrl))
			req := httptest.NewRequest(http.MethodPost,
				"/api/assessment", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

func TestHandler_Results(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		query    string
		wantCode int
	}{
		{
			name: "查到结果",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().
					Results(gomock.Any(), "1001").
					Return(service.Result{
						Assessment: domain.Assessment{Id: 1001, Token: "tok"},
					}, nil)
				return svc
			},
			query:    "?id=1001",
			wantCode: http.StatusOK,
		},
		{
			name: "查不到返回404",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := svcmocks.NewMockService(ctrl)
				svc.EXPECT().
					Results(gomock.Any(), "nobody@example.com").
					Return(service.Result{}, service.ErrAssessmentNotFound)
				return svc
			},
			query:    "?id=nobody@example.com",
			wantCode: http.StatusNotFound,
		},
		{
			name: "缺少参数返回400",
			mock: func(ctrl *gomock.Controller) service.Service {
				return svcmocks.NewMockService(ctrl)
			},
			query:    "",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newTestServer(tc.mock(ctrl))
			req := httptest.NewRequest(http.MethodGet,
				"/api/assessment/results"+tc.query, nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}
