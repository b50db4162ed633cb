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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/careerhub/internal/email"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// RegistrationEventConsumer 给新登记的用户发确认邮件。
// 发信失败只记日志，登记本身已经落库，不能因为邮件把流程打断。
type RegistrationEventConsumer struct {
	emailSvc email.Service
	consumer mq.Consumer
	from     string
	logger   *elog.Component
}

func NewRegistrationEventConsumer(emailSvc email.Service, q mq.MQ, from string) (*RegistrationEventConsumer, error) {
	const groupID = "marketing-registration"
	consumer, err := q.Consumer(RegistrationEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &RegistrationEventConsumer{
		emailSvc: emailSvc,
		consumer: consumer,
		from:     from,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *RegistrationEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费登记事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *RegistrationEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}

	var evt RegistrationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return err
	}

	mail := c.newMail(evt)
	err = c.emailSvc.SendMail(ctx, mail)
	if err != nil {
		c.logger.Error("发送确认邮件失败",
			elog.FieldErr(err),
			elog.String("email", evt.Email),
			elog.String("kind", evt.Kind))
	}
	return nil
}

func (c *RegistrationEventConsumer) newMail(evt RegistrationEvent) email.Mail {
	name := evt.Name
	if name == "" {
		name = "朋友"
	}
	switch evt.Kind {
	case KindCoachApplication:
		return email.Mail{
			From:    c.from,
			To:      evt.Email,
			Subject: "我们已经收到你的教练入驻申请",
			Body: []byte(fmt.Sprintf(
				"%s，你好。\n\n感谢申请成为平台教练，我们会在审核完成后通过邮件通知你。", name)),
		}
	default:
		return email.Mail{
			From:    c.from,
			To:      evt.Email,
			Subject: "你已加入等候名单",
			Body: []byte(fmt.Sprintf(
				"%s，你好。\n\n你已经成功加入等候名单，产品开放时我们会第一时间通知你。", name)),
		}
	}
}
