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

package marketing

import (
	"github.com/ecodeclub/careerhub/internal/marketing/internal/domain"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/event"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/service"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/web"
)

type Handler = web.Handler
type Service = service.Service

// RegistrationEventConsumer 由 ioc 统一启动
type RegistrationEventConsumer = event.RegistrationEventConsumer

type WaitlistEntry = domain.WaitlistEntry
type CoachApplication = domain.CoachApplication
type Campaign = domain.Campaign

type Module struct {
	Hdl      *Handler
	Svc      Service
	Consumer *RegistrationEventConsumer
}
