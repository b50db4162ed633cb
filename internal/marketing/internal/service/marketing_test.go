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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ecodeclub/careerhub/internal/marketing/internal/domain"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/event"
	evtmocks "github.com/ecodeclub/careerhub/internal/marketing/internal/event/mocks"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/repository"
	repomocks "github.com/ecodeclub/careerhub/internal/marketing/internal/repository/mocks"
)

func TestMarketingService_JoinWaitlist(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.MarketingRepository, event.RegistrationEventProducer)
		entry   domain.WaitlistEntry
		wantErr error
	}{
		{
			name: "登记成功并发事件",
			mock: func(ctrl *gomock.Controller) (repository.MarketingRepository, event.RegistrationEventProducer) {
				repo := repomocks.NewMockMarketingRepository(ctrl)
				repo.EXPECT().
					CreateWaitlistEntry(gomock.Any(), gomock.Any()).
					Return(domain.WaitlistEntry{Id: 1, Email: "tom@example.com", Name: "Tom"}, nil)
				producer := evtmocks.NewMockRegistrationEventProducer(ctrl)
				producer.EXPECT().
					Produce(gomock.Any(), event.RegistrationEvent{
						Kind:  event.KindWaitlist,
						Email: "tom@example.com",
						Name:  "Tom",
					}).Return(nil)
				return repo, producer
			},
			entry: domain.WaitlistEntry{Email: "tom@example.com", Name: "Tom"},
		},
		{
			name: "邮箱重复直接返回错误_不发事件",
			mock: func(ctrl *gomock.Controller) (repository.MarketingRepository, event.RegistrationEventProducer) {
				repo := repomocks.NewMockMarketingRepository(ctrl)
				repo.EXPECT().
					CreateWaitlistEntry(gomock.Any(), gomock.Any()).
					Return(domain.WaitlistEntry{}, repository.ErrDuplicatedEmail)
				return repo, evtmocks.NewMockRegistrationEventProducer(ctrl)
			},
			entry:   domain.WaitlistEntry{Email: "tom@example.com"},
			wantErr: ErrDuplicatedEmail,
		},
		{
			name: "发事件失败不影响登记结果",
			mock: func(ctrl *gomock.Controller) (repository.MarketingRepository, event.RegistrationEventProducer) {
				repo := repomocks.NewMockMarketingRepository(ctrl)
				repo.EXPECT().
					CreateWaitlistEntry(gomock.Any(), gomock.Any()).
					Return(domain.WaitlistEntry{Id: 2, Email: "jerry@example.com"}, nil)
				producer := evtmocks.NewMockRegistrationEventProducer(ctrl)
				producer.EXPECT().
					Produce(gomock.Any(), gomock.Any()).
					Return(errors.New("mq 不可用"))
				return repo, producer
			},
			entry: domain.WaitlistEntry{Email: "jerry@example.com"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, producer := tc.mock(ctrl)
			svc := NewService(repo, producer)
			created, err := svc.JoinWaitlist(context.Background(), tc.entry)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, tc.entry.Email, created.Email)
			}
		})
	}
}

func TestMarketingService_ApplyAsCoach(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.MarketingRepository, event.RegistrationEventProducer)
		app     domain.CoachApplication
		wantErr error
	}{
		{
			name: "申请成功并发事件",
			mock: func(ctrl *gomock.Controller) (repository.MarketingRepository, event.RegistrationEventProducer) {
				repo := repomocks.NewMockMarketingRepository(ctrl)
				repo.EXPECT().
					CreateCoachApplication(gomock.Any(), gomock.Any()).
					Return(domain.CoachApplication{
						Id:     1,
						Email:  "coach@example.com",
						Name:   "Anna",
						Status: domain.ApplicationStatusPending,
					}, nil)
				producer := evtmocks.NewMockRegistrationEventProducer(ctrl)
				producer.EXPECT().
					Produce(gomock.Any(), event.RegistrationEvent{
						Kind:  event.KindCoachApplication,
						Email: "coach@example.com",
						Name:  "Anna",
					}).Return(nil)
				return repo, producer
			},
			app: domain.CoachApplication{Email: "coach@example.com", Name: "Anna"},
		},
		{
			name: "重复申请返回错误",
			mock: func(ctrl *gomock.Controller) (repository.MarketingRepository, event.RegistrationEventProducer) {
				repo := repomocks.NewMockMarketingRepository(ctrl)
				repo.EXPECT().
					CreateCoachApplication(gomock.Any(), gomock.Any()).
					Return(domain.CoachApplication{}, repository.ErrDuplicatedEmail)
				return repo, evtmocks.NewMockRegistrationEventProducer(ctrl)
			},
			app:     domain.CoachApplication{Email: "coach@example.com"},
			wantErr: ErrDuplicatedEmail,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, producer := tc.mock(ctrl)
			svc := NewService(repo, producer)
			created, err := svc.ApplyAsCoach(context.Background(), tc.app)
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, domain.ApplicationStatusPending, created.Status)
			}
		})
	}
}

func TestMarketingService_ListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockMarketingRepository(ctrl)
	repo.EXPECT().ListActiveCampaigns(gomock.Any()).Return([]domain.Campaign{
		{Id: 1, Slug: "spring-cohort", Status: domain.CampaignStatusActive},
	}, nil)
	svc := NewService(repo, evtmocks.NewMockRegistrationEventProducer(ctrl))
	campaigns, err := svc.ListCampaigns(context.Background())
	require.NoError(t, err)
	assert.Len(t, campaigns, 1)
	assert.Equal(t, "spring-cohort", campaigns[0].Slug)
}
