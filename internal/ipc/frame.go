// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ipc

import "encoding/json"

// FrameType identifies the kind of frame sent over the connection.
type FrameType string

const (
	FrameTypeRequest  FrameType = "request"
	FrameTypeResponse FrameType = "response"
	FrameTypeEvent    FrameType = "event"
)

// Frame is the envelope exchanged between a window and the host.
type Frame struct {
	Type    FrameType       `json:"type"`
	ID      uint64          `json:"id"`               // request/response correlation; 0 is valid
	Method  string          `json:"method,omitempty"`  // command name (request only)
	Event   string          `json:"event,omitempty"`   // event name (event only)
	Payload json.RawMessage `json:"payload,omitempty"` // arguments, result or event payload
	Error   string          `json:"error,omitempty"`   // failure message (response only)
}
