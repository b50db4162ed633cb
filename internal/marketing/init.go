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
	"sync"

	"github.com/ecodeclub/careerhub/internal/email"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/event"
	"github.com/ecodeclub/careerhub/internal/marketing/internal/repository/dao"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.MarketingDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMMarketingDAO(db)
}

func initRegistrationConsumer(emailSvc email.Service, q mq.MQ) (*event.RegistrationEventConsumer, error) {
	return event.NewRegistrationEventConsumer(emailSvc, q, econf.GetString("email.from"))
}
