package dogtests

import (
	"net/http"
	"sort"

	"github.com/dog-api-tests/dog-api-contract-tests/contract"
	"github.com/dog-api-tests/dog-api-contract-tests/framework"
)

const (
	breedsListPath        = "/breeds/list/all"
	breedsListInvalidPath = "/breeds/list/all/invalid-path"
)

func DoBreedsListTests(t *T) {
	t.Feature("List All Breeds")
	p := t.Params()

	t.Run("success", func(t *T) {
		t.Severity(framework.SeverityBlocker)
		t.DisplayName("GET " + breedsListPath + " - Should return all dog breeds")

		o := t.GetSuccess(contract.NewEndpoint(breedsListPath, http.StatusOK), contract.KindObject,
			contract.MoreThan(p.MinBreedCount),
			contract.HasKeys(p.ExpectedBreeds...),
		)

		for _, breed := range p.BreedsWithSubBreeds {
			t.requireNoError(contract.Key(breed, contract.KindArray,
				contract.NotEmpty(),
				contract.Each(contract.LowercaseAlpha()),
			).Evaluate(o.Envelope.Message))
		}
		for _, breed := range p.BreedsWithoutSubBreeds {
			t.requireNoError(contract.Key(breed, contract.KindArray, contract.Empty()).Evaluate(o.Envelope.Message))
		}

		for _, breed := range sortedKeys(p.RequiredSubBreeds) {
			var checks []contract.Check
			for _, sub := range p.RequiredSubBreeds[breed] {
				checks = append(checks, contract.Includes(sub))
			}
			t.requireNoError(contract.Key(breed, contract.KindArray, checks...).Evaluate(o.Envelope.Message))
		}
	})

	t.Run("invalid route", func(t *T) {
		t.Severity(framework.SeverityNormal)
		t.DisplayName("GET " + breedsListPath + " - Invalid route scenario (404)")

		t.GetError(contract.NewEndpoint(breedsListInvalidPath, http.StatusNotFound),
			p.RouteNotFoundMessage(breedsListInvalidPath))
	})
}

func sortedKeys(m map[string][]string) []string {
	ret := make([]string, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
