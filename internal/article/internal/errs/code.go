package errs

var (
	SystemError     = ErrorCode{Code: 511001, Msg: "系统错误"}
	InvalidInput    = ErrorCode{Code: 411001, Msg: "参数错误"}
	ArticleNotFound = ErrorCode{Code: 411002, Msg: "文章不存在"}
	Unauthorized    = ErrorCode{Code: 411003, Msg: "凭证不对"}
	ScrapeRunning   = ErrorCode{Code: 411004, Msg: "抓取任务已在运行"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
