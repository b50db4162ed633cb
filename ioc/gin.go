package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/careerhub/internal/article"
	"github.com/ecodeclub/careerhub/internal/assessment"
	"github.com/ecodeclub/careerhub/internal/marketing"
	"github.com/ecodeclub/careerhub/internal/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinServer(
	articleM *article.Module,
	assessmentM *assessment.Module,
	marketingM *marketing.Module,
) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我们自己域名过来的
			return strings.Contains(origin, "careerhub.dev")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	articleM.Hdl.PublicRoutes(res.Engine)
	// 抓取和部署钩子自己带凭证校验，也挂在同一个服务上
	articleM.AdminHdl.PublicRoutes(res.Engine)
	assessmentM.Hdl.PublicRoutes(res.Engine)
	marketingM.Hdl.PublicRoutes(res.Engine)
	return res
}
