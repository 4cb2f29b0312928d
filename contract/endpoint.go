package contract

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

var placeholderRegex = regexp.MustCompile(`\{([^{}/]+)\}`)

// Endpoint describes a single request that a test case will make, along with the HTTP status
// it expects to receive.
type Endpoint struct {
	// PathTemplate is the path relative to the API base URL, such as "/breed/{breed}/images".
	PathTemplate string

	// PathParams supplies a value for each "{name}" placeholder in PathTemplate.
	PathParams map[string]string

	// ExpectedStatus is the HTTP status code the response should have.
	ExpectedStatus int
}

// NewEndpoint creates an Endpoint with no path parameters.
func NewEndpoint(path string, expectedStatus int) Endpoint {
	return Endpoint{PathTemplate: path, ExpectedStatus: expectedStatus}
}

// WithParam returns a copy of the Endpoint with an additional path parameter.
func (e Endpoint) WithParam(name, value string) Endpoint {
	params := make(map[string]string, len(e.PathParams)+1)
	for k, v := range e.PathParams {
		params[k] = v
	}
	params[name] = value
	e.PathParams = params
	return e
}

// Path returns the request path with each placeholder replaced by its escaped parameter value.
// Placeholders with no corresponding parameter are left as they are.
func (e Endpoint) Path() string {
	return placeholderRegex.ReplaceAllStringFunc(e.PathTemplate, func(m string) string {
		name := m[1 : len(m)-1]
		if value, ok := e.PathParams[name]; ok {
			return url.PathEscape(value)
		}
		return m
	})
}

// Validate returns an error if any placeholder in the template has no parameter value.
func (e Endpoint) Validate() error {
	var missing []string
	for _, m := range placeholderRegex.FindAllStringSubmatch(e.PathTemplate, -1) {
		if _, ok := e.PathParams[m[1]]; !ok {
			missing = append(missing, m[1])
		}
	}
	if len(missing) != 0 {
		sort.Strings(missing)
		return fmt.Errorf("no value for path parameter(s) %s in %q", strings.Join(missing, ", "), e.PathTemplate)
	}
	return nil
}

func (e Endpoint) String() string {
	return fmt.Sprintf("GET %s (expect %d)", e.Path(), e.ExpectedStatus)
}
