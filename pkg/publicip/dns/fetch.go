package dns

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"

	"github.com/miekg/dns"
)

var (
	ErrAnswerNotReceived = errors.New("response answer not received")
	ErrAnswerTypeUnknown = errors.New("answer type is not expected")
	ErrRecordEmpty       = errors.New("record is empty")
	ErrTooManyTXTRecords = errors.New("too many TXT records")
	ErrIPMalformed       = errors.New("IP address malformed")
	ErrIPNotIPv4         = errors.New("IP address is not IPv4")
)

func fetch(ctx context.Context, client Client, providerData providerData) (
	publicIP netip.Addr, err error) {
	message := &dns.Msg{
		MsgHdr: dns.MsgHdr{
			Opcode: dns.OpcodeQuery,
		},
		Question: []dns.Question{
			{
				Name:   providerData.fqdn,
				Qtype:  uint16(providerData.qType),
				Qclass: uint16(providerData.class),
			},
		},
	}

	address := net.JoinHostPort(providerData.IPv4.String(), "853")
	response, _, err := client.ExchangeContext(ctx, message, address)
	if err != nil {
		return netip.Addr{}, err
	}

	if len(response.Answer) == 0 {
		return netip.Addr{}, fmt.Errorf("%w", ErrAnswerNotReceived)
	}

	switch answer := response.Answer[0].(type) {
	case *dns.TXT:
		publicIP, err = handleTXTAnswer(answer)
		if err != nil {
			return netip.Addr{}, fmt.Errorf("handling TXT answer: %w", err)
		}
	case *dns.A:
		publicIP, err = handleAAnswer(answer)
		if err != nil {
			return netip.Addr{}, fmt.Errorf("handling A answer: %w", err)
		}
	default:
		return netip.Addr{}, fmt.Errorf("%w: %T", ErrAnswerTypeUnknown, answer)
	}

	if !publicIP.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %s", ErrIPNotIPv4, publicIP)
	}
	return publicIP, nil
}

func handleTXTAnswer(answer *dns.TXT) (publicIP netip.Addr, err error) {
	switch {
	case len(answer.Txt) == 0:
		return netip.Addr{}, fmt.Errorf("%w", ErrRecordEmpty)
	case len(answer.Txt) > 1:
		return netip.Addr{}, fmt.Errorf("%w: %d instead of 1",
			ErrTooManyTXTRecords, len(answer.Txt))
	}

	publicIP, err = netip.ParseAddr(answer.Txt[0])
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrIPMalformed, err)
	}
	return publicIP, nil
}

func handleAAnswer(answer *dns.A) (publicIP netip.Addr, err error) {
	if len(answer.A) == 0 {
		return netip.Addr{}, fmt.Errorf("%w", ErrRecordEmpty)
	}

	publicIP, ok := netip.AddrFromSlice(answer.A)
	if !ok {
		return netip.Addr{}, fmt.Errorf("%w: %s", ErrIPMalformed, answer.A)
	}
	return publicIP.Unmap(), nil
}
