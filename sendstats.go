package srtconn

import "github.com/srtgo-facade/srtconn/internal/srtapi"

// SendData sends one message. In server mode target must name a live
// accepted socket; in client mode the cached client socket is used and
// target is ignored. It fails fast, without touching the socket, when data
// exceeds the live-mode payload maximum.
func (i *Instance) SendData(data []byte, ctrl MsgCtrl, target SocketHandle) bool {
	if len(data) > i.maxPayload {
		i.log.warnf("sendData rejected: %d bytes exceeds max payload %d", len(data), i.maxPayload)
		return false
	}

	sock := i.resolveSendTarget(target)
	if sock == nil {
		i.log.warnf("sendData failed: unknown target %d", target)
		return false
	}

	if _, err := sock.Write(data); err != nil {
		i.log.warnf("sendData failed on socket %d: %v", target, err)
		return false
	}
	return true
}

func (i *Instance) resolveSendTarget(target SocketHandle) *srtapi.Socket {
	if i.GetCurrentMode() == ModeClient {
		sock, ok := i.loadClientSocket()
		if !ok {
			return nil
		}
		return sock
	}

	v, ok := i.sockets.Load(uint64(target))
	if !ok {
		return nil
	}
	sock, _ := v.(*srtapi.Socket)
	return sock
}

// GetStatistics populates out with target's transport counters (server
// mode) or the cached client socket's (client mode, target ignored).
func (i *Instance) GetStatistics(out *Statistics, clear bool, instantaneous bool, target SocketHandle) bool {
	sock := i.resolveSendTarget(target)
	if sock == nil {
		return false
	}

	stats, err := sock.Stats(clear, instantaneous)
	if err != nil {
		i.log.debugf("getStatistics failed: %v", err)
		return false
	}

	*out = Statistics{
		PktSentTotal:    stats.PktSentTotal,
		PktRecvTotal:    stats.PktRecvTotal,
		PktRetransTotal: stats.PktRetransTotal,
		MsRTT:           stats.MsRTT,
		MbpsSendRate:    stats.MbpsSendRate,
		MbpsRecvRate:    stats.MbpsRecvRate,
	}
	return true
}
