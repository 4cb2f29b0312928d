package fakeapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodedEnvelope struct {
	Status  string          `json:"status"`
	Message json.RawMessage `json:"message"`
	Code    int             `json:"code"`
}

func get(t *testing.T, server *httptest.Server, path string) (int, decodedEnvelope) {
	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var env decodedEnvelope
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	return resp.StatusCode, env
}

func TestBreedsList(t *testing.T) {
	httphelpers.WithServer(NewServer(DefaultData(), nil), func(server *httptest.Server) {
		status, env := get(t, server, "/breeds/list/all")
		assert.Equal(t, 200, status)
		assert.Equal(t, "success", env.Status)

		var breeds map[string][]string
		require.NoError(t, json.Unmarshal(env.Message, &breeds))
		assert.Greater(t, len(breeds), 50)
		assert.Equal(t, []string{"kelpie", "shepherd"}, breeds["australian"])
		assert.NotNil(t, breeds["affenpinscher"])
		assert.Empty(t, breeds["affenpinscher"])
		assert.Contains(t, string(env.Message), `"affenpinscher":[]`)
	})
}

func TestBreedImages(t *testing.T) {
	httphelpers.WithServer(NewServer(DefaultData(), nil), func(server *httptest.Server) {
		status, env := get(t, server, "/breed/hound/images")
		assert.Equal(t, 200, status)

		var images []string
		require.NoError(t, json.Unmarshal(env.Message, &images))
		assert.Len(t, images, 7*3)
		seen := make(map[string]bool)
		for _, image := range images {
			assert.True(t, strings.HasPrefix(image, "https://images.dog.ceo/breeds/hound-"), image)
			assert.True(t, strings.HasSuffix(image, ".jpg"), image)
			assert.False(t, seen[image], "duplicate image %s", image)
			seen[image] = true
		}

		status, env = get(t, server, "/breed/pug/images")
		assert.Equal(t, 200, status)
		require.NoError(t, json.Unmarshal(env.Message, &images))
		assert.Equal(t, "https://images.dog.ceo/breeds/pug/pug_1.jpg", images[0])
	})
}

func TestUnknownBreed(t *testing.T) {
	httphelpers.WithServer(NewServer(DefaultData(), nil), func(server *httptest.Server) {
		status, env := get(t, server, "/breed/nonexistentbreed/images")
		assert.Equal(t, 404, status)
		assert.Equal(t, "error", env.Status)
		assert.Equal(t, 404, env.Code)
		assert.Equal(t, `"Breed not found (main breed does not exist)"`, string(env.Message))
	})
}

func TestRandomImage(t *testing.T) {
	data := DefaultData()
	all := make(map[string]bool)
	for _, image := range data.AllImages() {
		all[image] = true
	}
	httphelpers.WithServer(NewServer(data, nil), func(server *httptest.Server) {
		status, env := get(t, server, "/breeds/image/random")
		assert.Equal(t, 200, status)
		var image string
		require.NoError(t, json.Unmarshal(env.Message, &image))
		assert.True(t, all[image], image)
	})
}

func TestRouteNotFoundEchoesURL(t *testing.T) {
	httphelpers.WithServer(NewServer(DefaultData(), nil), func(server *httptest.Server) {
		status, env := get(t, server, "/breeds/image/randomm")
		assert.Equal(t, 404, status)
		assert.Equal(t, 404, env.Code)
		var message string
		require.NoError(t, json.Unmarshal(env.Message, &message))
		assert.Equal(t, `No route found for "GET `+EchoBaseURL(server.URL)+`/breeds/image/randomm" with code: 0`, message)
	})
}

func TestOverrideAndRestore(t *testing.T) {
	fake := NewServer(DefaultData(), nil)
	httphelpers.WithServer(fake, func(server *httptest.Server) {
		restore := fake.Override("/breeds/list/all", httphelpers.HandlerWithStatus(503))
		resp, err := http.Get(server.URL + "/breeds/list/all")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, 503, resp.StatusCode)

		restore()
		restore()
		status, _ := get(t, server, "/breeds/list/all")
		assert.Equal(t, 200, status)

		requests := fake.Requests()
		require.Len(t, requests, 2)
		assert.Equal(t, "GET", requests[0].Method)
		assert.Equal(t, "/breeds/list/all", requests[1].Path)
	})
}

func TestEchoBaseURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:8080", EchoBaseURL("https://127.0.0.1:8080/"))
	assert.Equal(t, "http://localhost", EchoBaseURL("http://localhost"))
}
