// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import (
	"fmt"
	"strconv"
)

func sprintf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

func quote(s string) string {
	return strconv.Quote(s)
}
