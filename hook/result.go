// Copyright (C) 2024, Xahau Rentals. All rights reserved.
// See the file LICENSE for licensing terms.

package hook

// Result is the verdict for one transaction. A rejected transaction
// carries a stable numeric reason code; the note is for humans and logs
// only.
type Result struct {
	Accept bool
	Code   uint64
	Output []byte
}

func Accepted(note []byte) *Result {
	return &Result{Accept: true, Output: note}
}

func Rejected(code uint64, note []byte) *Result {
	return &Result{Code: code, Output: note}
}
