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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/careerhub/internal/marketing/internal/domain"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrDuplicatedEmail = dao.ErrDuplicatedEmail

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/marketing.mock.go MarketingRepository
type MarketingRepository interface {
	CreateWaitlistEntry(ctx context.Context, entry domain.WaitlistEntry) (domain.WaitlistEntry, error)
	CreateCoachApplication(ctx context.Context, app domain.CoachApplication) (domain.CoachApplication, error)
	ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error)
}

type marketingRepository struct {
	dao dao.MarketingDAO
}

func NewMarketingRepository(d dao.MarketingDAO) MarketingRepository {
	return &marketingRepository{dao: d}
}

func (m *marketingRepository) CreateWaitlistEntry(ctx context.Context, entry domain.WaitlistEntry) (domain.WaitlistEntry, error) {
	created, err := m.dao.CreateWaitlistEntry(ctx, dao.WaitlistEntry{
		Email: entry.Email,
		Name:  entry.Name,
		Goal:  entry.Goal,
	})
	if err != nil {
		return domain.WaitlistEntry{}, err
	}
	return m.toWaitlistDomain(created), nil
}

func (m *marketingRepository) CreateCoachApplication(ctx context.Context, app domain.CoachApplication) (domain.CoachApplication, error) {
	created, err := m.dao.CreateCoachApplication(ctx, dao.CoachApplication{
		Email:      app.Email,
		Name:       app.Name,
		Specialty:  app.Specialty,
		Experience: app.Experience,
		Bio:        app.Bio,
		Status:     uint8(domain.ApplicationStatusPending),
	})
	if err != nil {
		return domain.CoachApplication{}, err
	}
	return m.toApplicationDomain(created), nil
}

func (m *marketingRepository) ListActiveCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := m.dao.ListActiveCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(campaigns, func(_ int, src dao.Campaign) domain.Campaign {
		return m.toCampaignDomain(src)
	}), nil
}

func (m *marketingRepository) toWaitlistDomain(entry dao.WaitlistEntry) domain.WaitlistEntry {
	return domain.WaitlistEntry{
		Id:    entry.Id,
		Email: entry.Email,
		Name:  entry.Name,
		Goal:  entry.Goal,
		Ctime: time.UnixMilli(entry.Ctime),
	}
}

func (m *marketingRepository) toApplicationDomain(app dao.CoachApplication) domain.CoachApplication {
	return domain.CoachApplication{
		Id:         app.Id,
		Email:      app.Email,
		Name:       app.Name,
		Specialty:  app.Specialty,
		Experience: app.Experience,
		Bio:        app.Bio,
		Status:     domain.ApplicationStatus(app.Status),
		Ctime:      time.UnixMilli(app.Ctime),
		Utime:      time.UnixMilli(app.Utime),
	}
}

func (m *marketingRepository) toCampaignDomain(c dao.Campaign) domain.Campaign {
	return domain.Campaign{
		Id:        c.Id,
		Slug:      c.Slug,
		Title:     c.Title,
		Tagline:   c.Tagline,
		HeroImage: c.HeroImage,
		Status:    domain.CampaignStatus(c.Status),
		StartAt:   time.UnixMilli(c.StartAt),
		EndAt:     time.UnixMilli(c.EndAt),
	}
}
