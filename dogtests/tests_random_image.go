package dogtests

import (
	"net/http"

	"github.com/dog-api-tests/dog-api-contract-tests/contract"
	"github.com/dog-api-tests/dog-api-contract-tests/framework"
)

const (
	randomImagePath        = "/breeds/image/random"
	randomImageInvalidPath = "/breeds/image/randomm"
)

func DoRandomImageTests(t *T) {
	t.Feature("Random Image")
	t.Severity(framework.SeverityNormal)
	p := t.Params()

	t.Run("success", func(t *T) {
		t.DisplayName("GET " + randomImagePath + " - Should return a random image")

		t.GetSuccess(contract.NewEndpoint(randomImagePath, http.StatusOK), contract.KindString,
			contract.Value(
				contract.NotEmptyString(),
				contract.HasPrefix(p.ImageURLPrefix),
				contract.HasAnySuffix(p.ImageExtensions...),
				contract.Contains("breeds/"),
			),
		)
	})

	t.Run("invalid route", func(t *T) {
		t.DisplayName("GET " + randomImagePath + " - Invalid path scenario")

		t.GetError(contract.NewEndpoint(randomImageInvalidPath, http.StatusNotFound),
			p.RouteNotFoundMessage(randomImageInvalidPath))
	})
}
