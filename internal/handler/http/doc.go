// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST surface of the fixture API.
//
// Every route lives under /api and answers with the JSON envelope the client
// expects. Authentication, role checks, request tracing, access logging and
// response compression are handled here before requests reach the service
// layer.
package http
