// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the users service.
//
// It exposes the declarative route table, request handlers, and middleware
// used by the REST API. Cross-cutting concerns such as bearer-token
// authentication, request tracing, access logging, and per-request deadlines
// are handled in this package before requests are delegated to the service
// layer.
package http
