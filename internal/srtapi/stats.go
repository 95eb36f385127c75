package srtapi

// Stats is a translated snapshot of srtgo's SrtStats, keeping srtgo's type
// out of every other package's import graph.
type Stats struct {
	PktSentTotal    int64
	PktRecvTotal    int64
	PktRetransTotal int64
	MsRTT           float64
	MbpsSendRate    float64
	MbpsRecvRate    float64
}

// Stats retrieves the socket's transport counters. clear requests a
// clear-on-read; instantaneous requests instant rather than accumulated
// rates.
func (s *Socket) Stats(clear, instantaneous bool) (Stats, error) {
	raw, err := s.raw.Stats(clear, instantaneous)
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		PktSentTotal:    raw.PktSentTotal,
		PktRecvTotal:    raw.PktRecvTotal,
		PktRetransTotal: raw.PktRetransTotal,
		MsRTT:           raw.MsRTT,
		MbpsSendRate:    raw.MbpsSendRate,
		MbpsRecvRate:    raw.MbpsRecvRate,
	}, nil
}
