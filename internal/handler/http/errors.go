// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidRequestBody is reported when a request body is not the JSON the
// route expects.
var ErrInvalidRequestBody = errors.New("invalid request body")
