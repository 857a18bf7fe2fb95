package test

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
)

const (
	LoginPath       = "/llu/auth/login"
	ConnectionsPath = "/llu/connections"
)

func GraphPath(patientID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/graph", ConnectionsPath, patientID)
}

func LogbookPath(patientID uuid.UUID) string {
	return fmt.Sprintf("%s/%s/logbook", ConnectionsPath, patientID)
}

type StubResponse struct {
	Status int
	Header http.Header
	Body   []byte
	Gzip   bool
}

type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// LibreLinkUpServer serves canned responses per method and path and records every request
// it receives. Unknown routes are answered with 404.
type LibreLinkUpServer struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]StubResponse
	requests  []RecordedRequest
}

func (l *LibreLinkUpServer) Respond(method string, path string, response StubResponse) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.responses == nil {
		l.responses = make(map[string]StubResponse)
	}
	l.responses[routeKey(method, path)] = response
}

func (l *LibreLinkUpServer) RespondJSON(method string, path string, status int, body []byte) {
	l.Respond(method, path, StubResponse{
		Status: status,
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Body:   body,
	})
}

func (l *LibreLinkUpServer) Requests() []RecordedRequest {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]RecordedRequest{}, l.requests...)
}

func (l *LibreLinkUpServer) LastRequest() (RecordedRequest, bool) {
	requests := l.Requests()
	if len(requests) == 0 {
		return RecordedRequest{}, false
	}
	return requests[len(requests)-1], true
}

func (l *LibreLinkUpServer) record(r *http.Request) (StubResponse, bool) {
	body, _ := io.ReadAll(r.Body)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.requests = append(l.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
		Body:   body,
	})
	response, ok := l.responses[routeKey(r.Method, r.URL.Path)]
	return response, ok
}

func ServerStub() *LibreLinkUpServer {
	stub := &LibreLinkUpServer{}
	stub.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response, ok := stub.record(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		body := response.Body
		if response.Gzip {
			compressed, err := compress(body)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			body = compressed
			w.Header().Set("Content-Encoding", "gzip")
		}

		for name, values := range response.Header {
			for _, value := range values {
				w.Header().Add(name, value)
			}
		}

		status := response.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		w.Write(body)
	}))
	return stub
}

func compress(body []byte) ([]byte, error) {
	buffer := &bytes.Buffer{}
	writer := gzip.NewWriter(buffer)
	if _, err := writer.Write(body); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func routeKey(method string, path string) string {
	return method + " " + path
}
