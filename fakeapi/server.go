// Package fakeapi provides an in-process imitation of the dog API. It publishes the same routes
// and envelope format as the real service, so that the contract suite can be run without network
// access, and it lets tests replace any route with a handler that breaks the contract.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"

	"github.com/dog-api-tests/dog-api-contract-tests/framework"
)

const (
	breedNotFoundMessage  = "Breed not found (main breed does not exist)"
	routeNotFoundTemplate = `No route found for "GET %s" with code: 0`

	maxRecordedRequests = 1000
)

// Server is an http.Handler that serves the dog API routes from Data.
type Server struct {
	data      Data
	mux       *http.ServeMux
	overrides map[string]http.Handler
	requests  []RequestInfo
	logger    framework.Logger
	lock      sync.Mutex
}

// RequestInfo describes a request that the Server received.
type RequestInfo struct {
	Method string
	Path   string
	Header http.Header
}

type envelope struct {
	Status  string      `json:"status"`
	Message interface{} `json:"message"`
	Code    int         `json:"code,omitempty"`
}

// NewServer creates a Server. If logger is nil, nothing is logged.
func NewServer(data Data, logger framework.Logger) *Server {
	if logger == nil {
		logger = framework.NullLogger()
	}
	s := &Server{
		data:      data,
		overrides: make(map[string]http.Handler),
		logger:    logger,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /breeds/list/all", s.serveBreedsList)
	mux.HandleFunc("GET /breed/{breed}/images", s.serveBreedImages)
	mux.HandleFunc("GET /breeds/image/random", s.serveRandomImage)
	mux.HandleFunc("/", s.serveRouteNotFound)
	s.mux = mux
	return s
}

// Override causes requests for exactly the specified path to be handled by handler instead of
// the normal route. Calling the returned function restores the normal route.
func (s *Server) Override(path string, handler http.Handler) (restore func()) {
	s.lock.Lock()
	s.overrides[path] = handler
	s.lock.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			s.lock.Lock()
			delete(s.overrides, path)
			s.lock.Unlock()
		})
	}
}

// Requests returns the requests received so far, oldest first.
func (s *Server) Requests() []RequestInfo {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]RequestInfo(nil), s.requests...)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.lock.Lock()
	if len(s.requests) < maxRecordedRequests {
		s.requests = append(s.requests, RequestInfo{
			Method: req.Method,
			Path:   req.URL.Path,
			Header: req.Header.Clone(),
		})
	}
	override := s.overrides[req.URL.Path]
	s.lock.Unlock()

	s.logger.Printf("Received %s %s", req.Method, req.URL.Path)
	if override != nil {
		override.ServeHTTP(w, req)
		return
	}
	s.mux.ServeHTTP(w, req)
}

func (s *Server) serveBreedsList(w http.ResponseWriter, req *http.Request) {
	breeds := make(map[string][]string, len(s.data.Breeds))
	for name, subs := range s.data.Breeds {
		breeds[name] = append([]string{}, subs...)
	}
	s.writeEnvelope(w, http.StatusOK, envelope{Status: "success", Message: breeds})
}

func (s *Server) serveBreedImages(w http.ResponseWriter, req *http.Request) {
	images, ok := s.data.Images(req.PathValue("breed"))
	if !ok {
		s.writeError(w, http.StatusNotFound, breedNotFoundMessage)
		return
	}
	s.writeEnvelope(w, http.StatusOK, envelope{Status: "success", Message: images})
}

func (s *Server) serveRandomImage(w http.ResponseWriter, req *http.Request) {
	images := s.data.AllImages()
	if len(images) == 0 {
		s.writeError(w, http.StatusNotFound, breedNotFoundMessage)
		return
	}
	s.writeEnvelope(w, http.StatusOK, envelope{Status: "success", Message: images[rand.Intn(len(images))]})
}

// The real service echoes the request URL with an http scheme, whatever scheme was used.
func (s *Server) serveRouteNotFound(w http.ResponseWriter, req *http.Request) {
	url := "http://" + req.Host + req.URL.Path
	s.logger.Printf("Received request for unrecognized URL path %s", req.URL.Path)
	s.writeError(w, http.StatusNotFound, fmt.Sprintf(routeNotFoundTemplate, url))
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeEnvelope(w, status, envelope{Status: "error", Message: message, Code: status})
}

func (s *Server) writeEnvelope(w http.ResponseWriter, status int, e envelope) {
	data, err := json.Marshal(e)
	if err != nil {
		s.logger.Printf("Unexpected error encoding response: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// EchoBaseURL returns the base URL that the Server reports in route-not-found messages when it
// is listening at serverURL.
func EchoBaseURL(serverURL string) string {
	return "http://" + strings.TrimPrefix(strings.TrimPrefix(strings.TrimSuffix(serverURL, "/"), "http://"), "https://")
}
