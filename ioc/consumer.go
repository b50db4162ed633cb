package ioc

import (
	"github.com/ecodeclub/careerhub/internal/marketing"
)

func initConsumers(marketingM *marketing.Module) []Consumer {
	return []Consumer{
		marketingM.Consumer,
	}
}
