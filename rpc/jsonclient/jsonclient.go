// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonclient 实现JSON rpc客户端请求功能
package jsonclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
)

// JSONClient a object of jsonclient
type JSONClient struct {
	url    string
	prefix string
	client *http.Client
}

var requestID uint64

// NewJSONClient produce a json object, methods without a service default to "Chain."
func NewJSONClient(url string) (*JSONClient, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}
	return &JSONClient{url: url, prefix: "Chain", client: http.DefaultClient}, nil
}

// NewJSONClientWith custom http client, used by tests
func NewJSONClientWith(url string, client *http.Client) *JSONClient {
	c, _ := NewJSONClient(url)
	c.client = client
	return c
}

type clientRequest struct {
	Method string         `json:"method"`
	Params [1]interface{} `json:"params"`
	ID     uint64         `json:"id"`
}

type clientResponse struct {
	ID     uint64           `json:"id"`
	Result *json.RawMessage `json:"result"`
	Error  interface{}      `json:"error"`
}

// Call method with params, the result is decoded into resp
func (client *JSONClient) Call(method string, params, resp interface{}) error {
	if !strings.Contains(method, ".") {
		method = client.prefix + "." + method
	}
	req := &clientRequest{Method: method, ID: atomic.AddUint64(&requestID, 1)}
	req.Params[0] = params
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	postresp, err := client.client.Post(client.url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	defer postresp.Body.Close()
	b, err := io.ReadAll(postresp.Body)
	if err != nil {
		return err
	}
	if postresp.StatusCode != http.StatusOK {
		return errors.Errorf("%s: %s", postresp.Status, strings.TrimSpace(string(b)))
	}
	cresp := &clientResponse{}
	if err := json.Unmarshal(b, &cresp); err != nil {
		return err
	}
	if cresp.Error != nil {
		x, ok := cresp.Error.(string)
		if !ok {
			return fmt.Errorf("invalid error %v", cresp.Error)
		}
		if x == "" {
			x = "unspecified error"
		}
		return errors.New(x)
	}
	if cresp.Result == nil {
		return errors.New("Empty result")
	}
	if resp == nil {
		return nil
	}
	return json.Unmarshal(*cresp.Result, resp)
}
