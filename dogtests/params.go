package dogtests

import "fmt"

const (
	DefaultBaseURL = "https://dog.ceo/api"

	// The API reports its own URL with an http scheme in route-not-found messages, even when
	// the request was made with https.
	DefaultRouteEchoBaseURL = "http://dog.ceo/api"

	DefaultBreedNotFoundMessage  = "Breed not found (main breed does not exist)"
	DefaultRouteNotFoundTemplate = `No route found for "GET %s" with code: 0`
	DefaultImageURLPrefix        = "https://images.dog.ceo/breeds/"
)

// Params contains the literal values that the tests expect the API to produce. These are
// properties of the current deployment of the API rather than anything that can be derived,
// so they are configurable.
type Params struct {
	// RouteEchoBaseURL is the base URL that appears in route-not-found messages.
	RouteEchoBaseURL string

	BreedNotFoundMessage  string
	RouteNotFoundTemplate string
	ImageURLPrefix        string
	ImageExtensions       []string

	// MinBreedCount is the number that the count of breeds must exceed.
	MinBreedCount int

	// ExpectedBreeds must all be present in the full breed list.
	ExpectedBreeds []string

	// BreedsWithSubBreeds must have a non-empty list of sub-breeds.
	BreedsWithSubBreeds []string

	// RequiredSubBreeds maps breeds to sub-breeds that must appear in their lists.
	RequiredSubBreeds map[string][]string

	// BreedsWithoutSubBreeds must have an empty list of sub-breeds.
	BreedsWithoutSubBreeds []string

	// ImageBreeds are the breeds whose image lists are checked.
	ImageBreeds []string

	// UnknownBreed is a breed name that the API should not recognize.
	UnknownBreed string
}

// DefaultParams returns the values that match the public API.
func DefaultParams() Params {
	return Params{
		RouteEchoBaseURL:       DefaultRouteEchoBaseURL,
		BreedNotFoundMessage:   DefaultBreedNotFoundMessage,
		RouteNotFoundTemplate:  DefaultRouteNotFoundTemplate,
		ImageURLPrefix:         DefaultImageURLPrefix,
		ImageExtensions:        []string{".jpg", ".jpeg", ".png"},
		MinBreedCount:          50,
		ExpectedBreeds:         []string{"bulldog", "hound", "retriever"},
		BreedsWithSubBreeds:    []string{"australian"},
		RequiredSubBreeds:      map[string][]string{"australian": {"shepherd"}},
		BreedsWithoutSubBreeds: []string{"affenpinscher"},
		ImageBreeds:            []string{"hound"},
		UnknownBreed:           "nonexistentbreed",
	}
}

// RouteNotFoundMessage returns the message the API gives for an unregistered path.
func (p Params) RouteNotFoundMessage(path string) string {
	return fmt.Sprintf(p.RouteNotFoundTemplate, p.RouteEchoBaseURL+path)
}
