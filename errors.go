// Copyright 2026 The kd3 (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kd3

import "fmt"

const packageName = "kd3: "

// The package exposes no recoverable errors: every contract is a
// documented precondition, and a violated precondition is a caller
// bug, reported by panicking with a package-prefixed message.

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
