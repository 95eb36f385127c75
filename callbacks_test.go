package srtconn

import "testing"

func TestPreferNoCopyWinsWhenBothInstalled(t *testing.T) {
	cbs := callbacks{
		receivedData:       func(p []byte, c MsgCtrl, ctx *NetworkConnection, s SocketHandle) {},
		receivedDataNoCopy: func(p []byte, c MsgCtrl, ctx *NetworkConnection, s SocketHandle) {},
	}
	if !cbs.preferNoCopy() {
		t.Errorf("preferNoCopy() = false; want true when no-copy is installed alongside copy")
	}
}

func TestPreferNoCopyFalseWhenOnlyCopyInstalled(t *testing.T) {
	cbs := callbacks{
		receivedData: func(p []byte, c MsgCtrl, ctx *NetworkConnection, s SocketHandle) {},
	}
	if cbs.preferNoCopy() {
		t.Errorf("preferNoCopy() = true; want false when only the copy callback is installed")
	}
}

func TestHasDataCallback(t *testing.T) {
	var empty callbacks
	if empty.hasDataCallback() {
		t.Errorf("hasDataCallback() = true on empty callbacks")
	}

	withCopy := callbacks{receivedData: func(p []byte, c MsgCtrl, ctx *NetworkConnection, s SocketHandle) {}}
	if !withCopy.hasDataCallback() {
		t.Errorf("hasDataCallback() = false with receivedData installed")
	}

	withNoCopy := callbacks{receivedDataNoCopy: func(p []byte, c MsgCtrl, ctx *NetworkConnection, s SocketHandle) {}}
	if !withNoCopy.hasDataCallback() {
		t.Errorf("hasDataCallback() = false with receivedDataNoCopy installed")
	}
}
