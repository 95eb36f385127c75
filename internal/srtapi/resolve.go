package srtapi

import (
	"context"
	"net"

	"github.com/pkg/errors"
)

// ErrResolve is wrapped by Resolve's failures so the caller can classify
// them as address-resolution failures without string matching.
var ErrResolve = errors.New("address resolution failed")

// Resolve returns host unchanged if it is already an IPv4 literal;
// otherwise it resolves host through the host's name-resolution facility
// and returns the first address matching wantV6 (desired address family).
func Resolve(host string, wantV6 bool) (string, error) {
	if ip := net.ParseIP(host); ip != nil && ip.To4() != nil {
		return host, nil
	}

	addrs, err := net.DefaultResolver.LookupIPAddr(context.Background(), host)
	if err != nil {
		return "", errors.Wrapf(ErrResolve, "lookup %q: %v", host, err)
	}

	for _, a := range addrs {
		isV6 := a.IP.To4() == nil
		if isV6 == wantV6 {
			return a.IP.String(), nil
		}
	}

	return "", errors.Wrapf(ErrResolve, "no %s address for %q", familyName(wantV6), host)
}

func familyName(wantV6 bool) string {
	if wantV6 {
		return "IPv6"
	}
	return "IPv4"
}
