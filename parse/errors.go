package parse

import "errors"

var ErrPatternNil = errors.New("diagnostic pattern is nil")
var ErrPatternIncomplete = errors.New("diagnostic pattern is missing a required capture group")
