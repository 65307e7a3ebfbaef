package pipeline

import "errors"

var ErrCompilerNil = errors.New("compiler is nil")
var ErrInvokerNil = errors.New("invoker cannot be nil")
var ErrParserNil = errors.New("parser cannot be nil")
var ErrHooksNil = errors.New("hooks cannot be nil")
var ErrLogHandlerNil = errors.New("log handler cannot be nil")
var ErrTempDirEmpty = errors.New("temp directory cannot be empty")
