// Copyright 2024 The srtconn Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package srtconn is a thin façade over SRT (Secure Reliable Transport) for
// exchanging discrete application messages with one or many peers.
//
// An Instance starts in Unknown mode. StartServer puts it into Server mode,
// accepting either many concurrent peers or, with WithSingleClient(true),
// exactly one at a time. StartClient puts it into Client mode: it connects
// to a listener and transparently reconnects until Stop is called. Both
// modes deliver events — a peer connecting, a message arriving, a peer
// disconnecting — through the callbacks installed with SetClientConnected,
// SetReceivedData/SetReceivedDataNoCopy, SetClientDisconnected, and
// SetConnectedToServer.
//
// The underlying protocol work — congestion control, retransmission,
// handshake, encryption — is delegated entirely to libsrt through
// github.com/haivision/srtgo; this package only owns the connection
// lifecycle: accepting, polling for readiness, dispatching one message at a
// time to user callbacks, and shutting everything down cleanly.
package srtconn
