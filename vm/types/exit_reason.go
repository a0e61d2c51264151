// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "fmt"

type ExitKind uint8

const (
	ExitSucceed ExitKind = iota
	ExitError
	ExitRevert
	ExitFatal
)

type ExitCode uint8

// ExitSucceed codes
const (
	Stopped ExitCode = iota
	Returned
	Suicided
)

// ExitError codes
const (
	StackUnderflow ExitCode = iota
	StackOverflow
	InvalidJump
	InvalidRange
	DesignatedInvalid
	CallTooDeep
	CreateCollision
	CreateContractLimit
	InvalidCode
	OutOfOffset
	OutOfGas
	OutOfFund
	PCUnderflow
	CreateEmpty
	ErrorOther
)

// ExitRevert codes
const Reverted ExitCode = 0

// ExitFatal codes
const (
	NotSupported ExitCode = iota
	UnhandledInterrupt
	CallErrorAsFatal
	FatalOther
)

var (
	kindNames = [...]string{
		ExitSucceed: "succeed",
		ExitError:   "error",
		ExitRevert:  "revert",
		ExitFatal:   "fatal",
	}
	codeNames = map[ExitKind][]string{
		ExitSucceed: {"stopped", "returned", "suicided"},
		ExitError: {
			"stack underflow",
			"stack overflow",
			"invalid jump",
			"invalid range",
			"designated invalid",
			"call too deep",
			"create collision",
			"create contract limit",
			"invalid code",
			"out of offset",
			"out of gas",
			"out of fund",
			"pc underflow",
			"create empty",
			"other",
		},
		ExitRevert: {"reverted"},
		ExitFatal:  {"not supported", "unhandled interrupt", "call error as fatal", "other"},
	}
)

func (k ExitKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ExitReason is the reason the interpreter stopped executing a frame.
// Message carries the free-form text of ErrorOther and FatalOther, and the
// wrapped error of CallErrorAsFatal.
type ExitReason struct {
	Kind    ExitKind
	Code    ExitCode
	Message string
}

func Succeed(code ExitCode) ExitReason {
	return ExitReason{Kind: ExitSucceed, Code: code}
}

func Error(code ExitCode) ExitReason {
	return ExitReason{Kind: ExitError, Code: code}
}

func ErrorMessage(msg string) ExitReason {
	return ExitReason{Kind: ExitError, Code: ErrorOther, Message: msg}
}

func Revert() ExitReason {
	return ExitReason{Kind: ExitRevert, Code: Reverted}
}

func Fatal(code ExitCode, msg string) ExitReason {
	return ExitReason{Kind: ExitFatal, Code: code, Message: msg}
}

func (r ExitReason) IsSucceed() bool {
	return r.Kind == ExitSucceed
}

func (r ExitReason) String() string {
	codes := codeNames[r.Kind]
	code := "unknown"
	if int(r.Code) < len(codes) {
		code = codes[r.Code]
	}
	if r.Message != "" {
		return fmt.Sprintf("%s: %s: %s", r.Kind, code, r.Message)
	}
	return fmt.Sprintf("%s: %s", r.Kind, code)
}
