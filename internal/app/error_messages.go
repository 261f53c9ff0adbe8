// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the fixture API server,
// which writes them into response envelopes, and the client, which shows
// them to the user.
package app

// Authentication outcomes.
const (
	// MsgInvalidCredentials is returned for an unknown email or a wrong
	// password alike.
	MsgInvalidCredentials   = "Invalid credentials"
	MsgLoginSuccessful      = "Login successful"
	MsgRegisterSuccessful   = "User registered successfully"
	MsgUserAlreadyExists    = "User already exists with this email"
	MsgValidationFailed     = "Validation failed"
	MsgNoToken              = "No token, authorization denied"
	MsgInvalidToken         = "Invalid token"
	MsgTokenExpired         = "Token expired"
	MsgAccessDenied         = "Access denied"
	MsgServerError          = "Server error"
	MsgRouteNotFound        = "Route not found. Please use /api endpoints."
	MsgNotAuthenticated     = "Not authenticated"
	MsgInvalidDataProvided  = "Invalid data provided"
	MsgInvalidIDProvided    = "Invalid id provided"
	MsgUnexpectedAuthAnswer = "Unexpected response from the server"
)

// Resource outcomes.
const (
	MsgUserNotFound = "User not found"
	MsgUserUpdated  = "User updated successfully"
	MsgUserDeleted  = "User deleted successfully"

	MsgBusNotFound      = "Bus not found"
	MsgBusCreated       = "Bus created successfully"
	MsgBusUpdated       = "Bus updated successfully"
	MsgBusStatusUpdated = "Bus status updated successfully"
	MsgBusDeleted       = "Bus deleted successfully"
	MsgBusExists        = "Bus number or license plate already exists"

	MsgScheduleNotFound      = "Schedule not found"
	MsgScheduleCreated       = "Schedule created successfully"
	MsgScheduleUpdated       = "Schedule updated successfully"
	MsgScheduleStatusUpdated = "Schedule status updated successfully"
	MsgScheduleDeleted       = "Schedule deleted successfully"
)
