// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger on a context.Context.
//
// Loggers are either the pretty console handler defined here, which renders
// attributes as indented (optionally coloured) JSON, or the standard slog JSON
// handler. Both share LevelVar, which is initialised from SCRAWL_LOG_LEVEL.
package ctxlog
