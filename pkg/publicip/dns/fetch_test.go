package dns

import (
	"context"
	"errors"
	"net/netip"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/miekg/dns"
	"github.com/qdm12/ip-tracker/pkg/publicip/dns/mock_dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_fetch(t *testing.T) {
	t.Parallel()

	providerData := providerData{
		IPv4:    netip.AddrFrom4([4]byte{1, 2, 3, 4}),
		TLSName: "nameserver",
		fqdn:    "record",
		class:   dns.ClassNONE,
		qType:   dns.Type(dns.TypeTXT),
	}

	expectedMessage := &dns.Msg{
		MsgHdr: dns.MsgHdr{
			Opcode: dns.OpcodeQuery,
		},
		Question: []dns.Question{
			{
				Name:   providerData.fqdn,
				Qtype:  dns.TypeTXT,
				Qclass: uint16(providerData.class),
			},
		},
	}

	testCases := map[string]struct {
		response    *dns.Msg
		exchangeErr error
		publicIP    netip.Addr
		err         error
	}{
		"TXT success": {
			response: &dns.Msg{
				Answer: []dns.RR{
					&dns.TXT{
						Txt: []string{"55.55.55.55"},
					},
				},
			},
			publicIP: netip.AddrFrom4([4]byte{55, 55, 55, 55}),
		},
		"A success": {
			response: &dns.Msg{
				Answer: []dns.RR{
					&dns.A{
						A: []byte{55, 55, 55, 56},
					},
				},
			},
			publicIP: netip.AddrFrom4([4]byte{55, 55, 55, 56}),
		},
		"exchange error": {
			exchangeErr: errors.New("dummy"),
			err:         errors.New("dummy"),
		},
		"no answer": {
			response: &dns.Msg{},
			err:      ErrAnswerNotReceived,
		},
		"wrong answer type": {
			response: &dns.Msg{
				Answer: []dns.RR{&dns.AAAA{}},
			},
			err: errors.New("answer type is not expected: *dns.AAAA"),
		},
		"no TXT record": {
			response: &dns.Msg{
				Answer: []dns.RR{&dns.TXT{}},
			},
			err: errors.New("handling TXT answer: record is empty"),
		},
		"too many TXT record": {
			response: &dns.Msg{
				Answer: []dns.RR{&dns.TXT{
					Txt: []string{"a", "b"},
				}},
			},
			err: errors.New("handling TXT answer: too many TXT records: 2 instead of 1"),
		},
		"invalid IP address": {
			response: &dns.Msg{
				Answer: []dns.RR{&dns.TXT{
					Txt: []string{"invalid"},
				}},
			},
			err: errors.New(`handling TXT answer: IP address malformed: ParseAddr("invalid"): unable to parse IP`),
		},
		"IPv6 address": {
			response: &dns.Msg{
				Answer: []dns.RR{&dns.TXT{
					Txt: []string{"::1"},
				}},
			},
			err: errors.New("IP address is not IPv4: ::1"),
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			ctx := context.Background()

			client := mock_dns.NewMockClient(ctrl)
			client.EXPECT().
				ExchangeContext(ctx, expectedMessage, "1.2.3.4:853").
				Return(testCase.response, time.Millisecond, testCase.exchangeErr)

			publicIP, err := fetch(ctx, client, providerData)

			if testCase.err != nil {
				require.Error(t, err)
				assert.Equal(t, testCase.err.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testCase.publicIP, publicIP)
		})
	}
}

func Test_Fetcher_IP(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	ctx := context.Background()

	clientA := mock_dns.NewMockClient(ctrl)
	clientA.EXPECT().
		ExchangeContext(ctx, gomock.Any(), "1.1.1.1:853").
		Return(&dns.Msg{Answer: []dns.RR{&dns.TXT{Txt: []string{"1.2.3.4"}}}},
			time.Millisecond, nil)
	clientB := mock_dns.NewMockClient(ctrl)
	clientB.EXPECT().
		ExchangeContext(ctx, gomock.Any(), "208.67.222.222:853").
		Return(nil, time.Millisecond, errors.New("dummy"))

	fetcher := &Fetcher{
		servers: []server{
			{provider: Cloudflare, data: Cloudflare.data(), client: clientA},
			{provider: OpenDNS, data: OpenDNS.data(), client: clientB},
		},
	}

	publicIP, err := fetcher.IP(ctx)
	require.NoError(t, err)
	assert.Equal(t, netip.AddrFrom4([4]byte{1, 2, 3, 4}), publicIP)

	_, err = fetcher.IP(ctx)
	require.Error(t, err)
	assert.Equal(t, "fetching from opendns: dummy", err.Error())
	assert.Equal(t, 0, fetcher.index)
}

func Test_New(t *testing.T) {
	t.Parallel()

	fetcher, err := New(SetProviders(OpenDNS), SetTimeout(time.Hour))
	require.NoError(t, err)

	require.Len(t, fetcher.servers, 1)
	server := fetcher.servers[0]
	assert.Equal(t, OpenDNS, server.provider)
	client, ok := server.client.(*dns.Client)
	require.True(t, ok)
	assert.Equal(t, "tcp4-tls", client.Net)
	assert.Equal(t, time.Hour, client.Timeout)
	assert.Equal(t, "dns.opendns.com", client.TLSConfig.ServerName)
}
