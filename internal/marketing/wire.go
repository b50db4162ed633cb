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

//go:build wireinject

package marketing

import (
	"github.com/ecodeclub/careerhub/internal/email"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/event"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/repository"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/service"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, emailSvc email.Service) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewMarketingRepository,
		event.NewRegistrationEventProducer,
		service.NewService,
		web.NewHandler,
		initRegistrationConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
