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

package service

import (
	"context"

	"github.com/ecodeclub/careerhub/internal/marketing/internal/domain"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/event"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var ErrDuplicatedEmail = repository.ErrDuplicatedEmail

//go:generate mockgen -source=./marketing.go -package=svcmocks -destination=./mocks/marketing.mock.go Service
type Service interface {
	JoinWaitlist(ctx context.Context, entry domain.WaitlistEntry) (domain.WaitlistEntry, error)
	ApplyAsCoach(ctx context.Context, app domain.CoachApplication) (domain.CoachApplication, error)
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
}

type marketingService struct {
	repo     repository.MarketingRepository
	producer event.RegistrationEventProducer
	logger   *elog.Component
}

func NewService(repo repository.MarketingRepository, producer event.RegistrationEventProducer) Service {
	return &marketingService{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *marketingService) JoinWaitlist(ctx context.Context, entry domain.WaitlistEntry) (domain.WaitlistEntry, error) {
	created, err := s.repo.CreateWaitlistEntry(ctx, entry)
	if err != nil {
		return domain.WaitlistEntry{}, err
	}
	s.produce(ctx, event.RegistrationEvent{
		Kind:  event.KindWaitlist,
		Email: created.Email,
		Name:  created.Name,
	})
	return created, nil
}

func (s *marketingService) ApplyAsCoach(ctx context.Context, app domain.CoachApplication) (domain.CoachApplication, error) {
	created, err := s.repo.CreateCoachApplication(ctx, app)
	if err != nil {
		return domain.CoachApplication{}, err
	}
	s.produce(ctx, event.RegistrationEvent{
		Kind:  event.KindCoachApplication,
		Email: created.Email,
		Name:  created.Name,
	})
	return created, nil
}

func (s *marketingService) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return s.repo.ListActiveCampaigns(ctx)
}

// produce 发事件失败不影响主流程，只记日志
func (s *marketingService) produce(ctx context.Context, evt event.RegistrationEvent) {
	err := s.producer.Produce(ctx, evt)
	if err != nil {
		s.logger.Error("发送登记事件失败",
			elog.FieldErr(err),
			elog.String("email", evt.Email),
			elog.String("kind", evt.Kind))
	}
}
