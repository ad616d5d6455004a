// Package networktest fakes upstream HTTP APIs for fetcher tests.
package networktest

import (
	"io"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"
)

// Reply is a canned upstream answer.
type Reply struct {
	Status int
	Body   string
	Err    error
}

// Doer answers requests by matching the request URL against route prefixes.
// Requests with no matching route get a 404.
type Doer struct {
	Routes   map[string]Reply
	Requests []*fhttp.Request
}

func (d *Doer) Do(req *fhttp.Request) (*fhttp.Response, error) {
	d.Requests = append(d.Requests, req)

	target := req.URL.String()
	reply, ok := Reply{Status: fhttp.StatusNotFound}, false
	longest := -1
	for prefix, candidate := range d.Routes {
		if strings.HasPrefix(target, prefix) && len(prefix) > longest {
			reply, ok, longest = candidate, true, len(prefix)
		}
	}
	if ok && reply.Err != nil {
		return nil, reply.Err
	}

	status := reply.Status
	if status == 0 {
		status = fhttp.StatusOK
	}
	return &fhttp.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(reply.Body)),
		Header:     fhttp.Header{},
		Request:    req,
	}, nil
}

// URLs returns every requested URL in order.
func (d *Doer) URLs() []string {
	urls := make([]string, 0, len(d.Requests))
	for _, req := range d.Requests {
		urls = append(urls, req.URL.String())
	}
	return urls
}
