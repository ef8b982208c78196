// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandler       = errors.New("no http handler is provided")
	errNoServerAddress = errors.New("no http address is configured")
)
