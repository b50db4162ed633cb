package web

import (
	"github.com/ecodeclub/careerhub/internal/article/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	articleNotFoundResult = ginx.Result{
		Code: errs.ArticleNotFound.Code,
		Msg:  errs.ArticleNotFound.Msg,
	}
	unauthorizedResult = ginx.Result{
		Code: errs.Unauthorized.Code,
		Msg:  errs.Unauthorized.Msg,
	}
	scrapeRunningResult = ginx.Result{
		Code: errs.ScrapeRunning.Code,
		Msg:  errs.ScrapeRunning.Msg,
	}
)
