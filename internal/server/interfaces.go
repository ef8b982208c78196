// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the transport server.
//
// Implementations block in [Server.RunServer] until shutdown is requested
// and release resources in [Server.Shutdown].
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT.
	RunServer()

	// Run serves requests until ctx is done, then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
