// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the server adapter, the persisted session, and the terminal UI
// into a single process lifecycle.
package client
