package invoke

import "errors"

var ErrProcessStart = errors.New("compiler process could not be started")
var ErrModuleLoad = errors.New("compiler wasm module could not be loaded")
var ErrShellEmpty = errors.New("shell path cannot be empty")
var ErrRuntimeEmpty = errors.New("runtime path cannot be empty")
