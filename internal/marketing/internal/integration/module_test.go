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

//go:build e2e

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/careerhub/internal/marketing/internal/domain"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/event"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/repository"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/repository/dao"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/service"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/web"
	"github.com/ecodeclub/careerhub/internal/test"
	testioc "github.com/ecodeclub/careerhub/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

func TestMarketingModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db     *egorm.Component
	dao    dao.MarketingDAO
	server *gin.Engine
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.NoError(dao.InitTables(s.db))
	s.dao = dao.NewGORMMarketingDAO(s.db)
	repo := repository.NewMarketingRepository(s.dao)
	q := testioc.InitMQ()
	producer, err := event.NewRegistrationEventProducer(q)
	s.NoError(err)
	svc := service.NewService(repo, producer)
	gin.SetMode(gin.TestMode)
	s.server = gin.New()
	web.NewHandler(svc).PublicRoutes(s.server)
}

func (s *ModuleTestSuite) TearDownTest() {
	s.NoError(s.db.Exec("TRUNCATE TABLE `waitlist_entries`").Error)
	s.NoError(s.db.Exec("TRUNCATE TABLE `coach_applications`").Error)
	s.NoError(s.db.Exec("TRUNCATE TABLE `campaigns`").Error)
}

func (s *ModuleTestSuite) TestJoinWaitlist_DuplicateEmail() {
	body := `{"email":"tom@example.com","name":"Tom","goal":"转行"}`

	req := httptest.NewRequest(http.MethodPost, "/api/waitlist", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	s.Equal(http.StatusOK, recorder.Code)
	var res test.Result[web.JoinWaitlistResp]
	s.NoError(json.NewDecoder(recorder.Body).Decode(&res))
	s.True(res.Data.Success)

	// 同一个邮箱再来一次
	req = httptest.NewRequest(http.MethodPost, "/api/waitlist", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder = httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	s.Equal(http.StatusConflict, recorder.Code)

	var cnt int64
	s.NoError(s.db.Model(&dao.WaitlistEntry{}).Count(&cnt).Error)
	s.Equal(int64(1), cnt)
}

func (s *ModuleTestSuite) TestCreateWaitlistEntry_DAO() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	created, err := s.dao.CreateWaitlistEntry(ctx, dao.WaitlistEntry{
		Email: "jerry@example.com",
	})
	s.NoError(err)
	s.True(created.Id > 0)
	s.True(created.Ctime > 0)

	_, err = s.dao.CreateWaitlistEntry(ctx, dao.WaitlistEntry{
		Email: "jerry@example.com",
	})
	s.ErrorIs(err, dao.ErrDuplicatedEmail)
}

func (s *ModuleTestSuite) TestListActiveCampaigns() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	now := time.Now().UnixMilli()
	s.NoError(s.db.WithContext(ctx).Create(&dao.Campaign{
		Slug:    "spring-cohort",
		Title:   "春季训练营",
		Status:  uint8(domain.CampaignStatusActive),
		StartAt: now,
	}).Error)
	s.NoError(s.db.WithContext(ctx).Create(&dao.Campaign{
		Slug:    "old-cohort",
		Title:   "去年的活动",
		Status:  uint8(domain.CampaignStatusEnded),
		StartAt: now - 100,
	}).Error)

	campaigns, err := s.dao.ListActiveCampaigns(ctx)
	s.NoError(err)
	s.Len(campaigns, 1)
	s.Equal("spring-cohort", campaigns[0].Slug)
}
