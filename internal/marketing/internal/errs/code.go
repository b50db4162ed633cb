package errs

var (
	SystemError     = ErrorCode{Code: 512001, Msg: "系统错误"}
	InvalidInput    = ErrorCode{Code: 412001, Msg: "参数错误"}
	DuplicatedEmail = ErrorCode{Code: 412002, Msg: "该邮箱已经登记过"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
