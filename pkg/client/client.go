package client

import (
	"fmt"
	"net/http"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/imbecility/yt-metaproxy/pkg/providers"
)

// tlsWrapper adapts tls-client to the net/http shaped providers.HTTPClient.
type tlsWrapper struct {
	innerClient tls_client.HttpClient
}

func (w *tlsWrapper) Do(req *http.Request) (*http.Response, error) {
	fReq := &fhttp.Request{
		Method:        req.Method,
		URL:           req.URL,
		Proto:         req.Proto,
		ProtoMajor:    req.ProtoMajor,
		ProtoMinor:    req.ProtoMinor,
		Header:        make(fhttp.Header),
		Body:          req.Body,
		ContentLength: req.ContentLength,
		Host:          req.Host,
	}
	fReq = fReq.WithContext(req.Context())

	for k, v := range req.Header {
		fReq.Header[k] = v
	}

	resp, err := w.innerClient.Do(fReq)
	if err != nil {
		return nil, err
	}

	netResp := &http.Response{
		Status:           resp.Status,
		StatusCode:       resp.StatusCode,
		Proto:            resp.Proto,
		ProtoMajor:       resp.ProtoMajor,
		ProtoMinor:       resp.ProtoMinor,
		ContentLength:    resp.ContentLength,
		Body:             resp.Body,
		Header:           make(http.Header),
		Uncompressed:     resp.Uncompressed,
		TransferEncoding: resp.TransferEncoding,
		Request:          req,
	}

	for k, v := range resp.Header {
		netResp.Header[k] = v
	}

	return netResp, nil
}

// NewHttpClient builds a browser-fingerprinted client for outbound provider calls.
func NewHttpClient(timeoutSec int) (providers.HTTPClient, error) {
	if timeoutSec <= 0 {
		timeoutSec = 15
	}

	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(timeoutSec),
		tls_client.WithClientProfile(profiles.DefaultClientProfile),
		tls_client.WithRandomTLSExtensionOrder(),
	}

	c, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tls client: %w", err)
	}

	return &tlsWrapper{innerClient: c}, nil
}
