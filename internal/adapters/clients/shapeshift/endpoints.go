package shapeshift

import (
	"net/http"
	"net/url"
	"strings"
)

// Endpoint describes one upstream operation. Values are fixed at start-up.
type Endpoint struct {
	// Name is the logical operation name, used in errors, logs and metrics.
	Name string

	// Method is the HTTP method.
	Method string

	// Path is the path prefix; arguments are appended as escaped segments.
	Path string

	// ErrorTolerant marks endpoints whose successful payloads may carry an
	// "error" field. Recognised error messages still fail on these endpoints.
	ErrorTolerant bool
}

// The ShapeShift endpoint table.
var (
	EndpointRate                = Endpoint{Name: "rate", Method: http.MethodGet, Path: "/rate"}
	EndpointLimit               = Endpoint{Name: "limit", Method: http.MethodGet, Path: "/limit"}
	EndpointMarketInfo          = Endpoint{Name: "marketinfo", Method: http.MethodGet, Path: "/marketinfo"}
	EndpointRecentTransactions  = Endpoint{Name: "recenttx", Method: http.MethodGet, Path: "/recenttx"}
	EndpointTransactionStatus   = Endpoint{Name: "txStat", Method: http.MethodGet, Path: "/txStat"}
	EndpointTimeRemaining       = Endpoint{Name: "timeremaining", Method: http.MethodGet, Path: "/timeremaining"}
	EndpointSupportedCoins      = Endpoint{Name: "getcoins", Method: http.MethodGet, Path: "/getcoins"}
	EndpointTransactionsByKey   = Endpoint{Name: "txbyapikey", Method: http.MethodGet, Path: "/txbyapikey"}
	EndpointTransactionsByAddr  = Endpoint{Name: "txbyaddress", Method: http.MethodGet, Path: "/txbyaddress"}
	EndpointValidateAddress     = Endpoint{Name: "validateAddress", Method: http.MethodGet, Path: "/validateAddress", ErrorTolerant: true}
	EndpointCreateTransaction   = Endpoint{Name: "shift", Method: http.MethodPost, Path: "/shift"}
	EndpointEmailReceipt        = Endpoint{Name: "mail", Method: http.MethodPost, Path: "/mail"}
	EndpointFixedAmount         = Endpoint{Name: "sendamount", Method: http.MethodPost, Path: "/sendamount"}
	EndpointCancelPending       = Endpoint{Name: "cancelpending", Method: http.MethodPost, Path: "/cancelpending"}
)

// Endpoints lists every endpoint, in the order of the upstream documentation.
func Endpoints() []Endpoint {
	return []Endpoint{
		EndpointRate,
		EndpointLimit,
		EndpointMarketInfo,
		EndpointRecentTransactions,
		EndpointTransactionStatus,
		EndpointTimeRemaining,
		EndpointSupportedCoins,
		EndpointTransactionsByKey,
		EndpointTransactionsByAddr,
		EndpointValidateAddress,
		EndpointCreateTransaction,
		EndpointEmailReceipt,
		EndpointFixedAmount,
		EndpointCancelPending,
	}
}

// URLPath renders the endpoint path with each segment path-escaped.
func (e Endpoint) URLPath(segments ...string) string {
	var b strings.Builder

	b.WriteString(e.Path)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}

	return b.String()
}
