package console

import (
	"errors"

	"github.com/minivm/lc3/translate"
)

var f = translate.From

var (
	ErrConsoleClosed = errors.New(f("console input closed"))
)
