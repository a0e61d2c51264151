// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package perms

// Permissions of the files and directories created by the CLI.
const (
	ReadWrite        = 0o640
	ReadWriteExecute = 0o750
)
