// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the process lifecycle of the alert demo.
//
// It runs the terminal UI under a context that is cancelled on SIGINT or
// SIGTERM, so an interrupt ends the program cleanly.
package client
