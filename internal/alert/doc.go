// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package alert implements the confirmation overlay: a presentational
// [View] with confirm/dismiss buttons, the [Modifier] that decides whether
// the view is laid over some content, and the [State] flag that drives it.
//
// The package knows nothing about Bubble Tea. Callers own the [State] and
// receive taps through the zero-argument procedures in [Actions]; neither
// constructing nor rendering a [View] ever calls them.
package alert
