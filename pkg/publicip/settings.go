package publicip

import (
	"net/http"

	"github.com/qdm12/ip-tracker/pkg/publicip/dns"
	iphttp "github.com/qdm12/ip-tracker/pkg/publicip/http"
)

// DNSSettings configures detection with DNS over TLS echo services.
type DNSSettings struct {
	Enabled bool
	Options []dns.Option
}

// HTTPSettings configures detection with HTTP echo services.
// Client is required if Enabled is true.
type HTTPSettings struct {
	Enabled bool
	Client  *http.Client
	Options []iphttp.Option
}
