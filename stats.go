package srtconn

// Statistics is a snapshot of a socket's transport counters, translated out
// of srtgo's internal stats type so callers never depend on the adapter.
type Statistics struct {
	PktSentTotal    int64
	PktRecvTotal    int64
	PktRetransTotal int64
	MsRTT           float64
	MbpsSendRate    float64
	MbpsRecvRate    float64
}
