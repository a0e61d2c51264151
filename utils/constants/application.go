// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

// AppName is the name of this application
const AppName = "evmtracer"

// Version is reported as the service version of exported traces
const Version = "v0.1.0"
