// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpcclient implements a JSON-RPC client for the handful of RPC
// methods this mining daemon actually calls (getmininginfo, submitblock).
// Unlike a full node's own rpcclient, which keeps a persistent websocket
// open for block/tx notifications, this client speaks one-shot HTTP POST
// JSON-RPC 1.0: the driver never needs a push channel from the server it
// submits blocks to.
package rpcclient

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/decred/dcrd/dcrjson/v4"
)

// ConnConfig describes the RPC server to connect to and the credentials to
// use.
type ConnConfig struct {
	// Host is the host:port of the RPC server to connect to.
	Host string

	// User and Pass are the HTTP Basic Auth credentials for the RPC server.
	User string
	Pass string

	// Certificates holds the PEM-encoded certificate chain to validate the
	// server's TLS certificate against. Ignored when DisableTLS is true.
	Certificates []byte

	// DisableTLS disables TLS, for use connecting to a server listening on
	// plain HTTP (e.g. over an otherwise-secured loopback or tunnel).
	DisableTLS bool
}

// Client issues JSON-RPC requests against a single configured server.
type Client struct {
	config ConnConfig
	http   *http.Client
	nextID uint64
}

// New returns a Client ready to issue requests against the server described
// by config.
func New(config *ConnConfig) (*Client, error) {
	transport := &http.Transport{}
	if !config.DisableTLS {
		pool := x509.NewCertPool()
		if len(config.Certificates) > 0 {
			if !pool.AppendCertsFromPEM(config.Certificates) {
				return nil, fmt.Errorf("invalid certificate data")
			}
		}
		transport.TLSClientConfig = &tls.Config{RootCAs: pool}
	}

	return &Client{
		config: *config,
		http:   &http.Client{Transport: transport, Timeout: 30 * time.Second},
	}, nil
}

// response is the value a future channel carries: either the raw JSON
// result or the error the call failed with.
type response struct {
	result []byte
	err    error
}

// rawResponse mirrors the JSON-RPC 1.0 reply envelope every method in this
// package's command set uses.
type rawResponse struct {
	Result json.RawMessage   `json:"result"`
	Error  *dcrjson.RPCError `json:"error"`
}

// sendCmd marshals cmd per its dcrjson registration and issues it
// asynchronously, returning a channel the caller's FutureXxxResult.Receive
// reads from.
func (c *Client) sendCmd(cmd interface{}) chan *response {
	out := make(chan *response, 1)

	id := atomic.AddUint64(&c.nextID, 1)
	marshalled, err := dcrjson.MarshalCmd(dcrjson.RPCVersion1, id, cmd)
	if err != nil {
		out <- &response{err: err}
		return out
	}

	go func() {
		out <- c.sendPostRequest(marshalled)
	}()
	return out
}

// sendPostRequest issues marshalled as the body of a single HTTP POST and
// decodes the JSON-RPC envelope from the reply.
func (c *Client) sendPostRequest(marshalled []byte) *response {
	protocol := "https"
	if c.config.DisableTLS {
		protocol = "http"
	}
	url := fmt.Sprintf("%s://%s", protocol, c.config.Host)

	httpReq, err := http.NewRequest("POST", url, bytes.NewReader(marshalled))
	if err != nil {
		return &response{err: err}
	}
	httpReq.Close = true
	httpReq.Header.Set("Content-Type", "application/json")
	auth := base64.StdEncoding.EncodeToString([]byte(c.config.User + ":" + c.config.Pass))
	httpReq.Header.Set("Authorization", "Basic "+auth)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return &response{err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return &response{err: err}
	}
	if httpResp.StatusCode != http.StatusOK {
		return &response{err: fmt.Errorf("%s", http.StatusText(httpResp.StatusCode))}
	}

	var resp rawResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return &response{err: err}
	}
	if resp.Error != nil {
		return &response{err: resp.Error}
	}
	return &response{result: resp.Result}
}

// receiveFuture blocks on f and splits its response into the conventional
// (result, error) pair every FutureXxxResult.Receive method returns.
func receiveFuture(f chan *response) ([]byte, error) {
	r := <-f
	if r.err != nil {
		return nil, r.err
	}
	return r.result, nil
}
