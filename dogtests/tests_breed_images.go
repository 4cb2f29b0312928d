package dogtests

import (
	"net/http"

	"github.com/dog-api-tests/dog-api-contract-tests/contract"
	"github.com/dog-api-tests/dog-api-contract-tests/framework"
)

const breedImagesPath = "/breed/{breed}/images"

func breedImagesEndpoint(breed string, expectedStatus int) contract.Endpoint {
	return contract.NewEndpoint(breedImagesPath, expectedStatus).WithParam("breed", breed)
}

func DoBreedImagesTests(t *T) {
	t.Feature("Images by Breed")
	t.Severity(framework.SeverityNormal)
	p := t.Params()

	for _, breed := range p.ImageBreeds {
		breed := breed
		t.Run(breed, func(t *T) {
			t.DisplayName("GET " + breedImagesPath + " - Should return images for " + breed)

			t.GetSuccess(breedImagesEndpoint(breed, http.StatusOK), contract.KindArray,
				contract.NotEmpty(),
				contract.Each(
					contract.HasPrefix(p.ImageURLPrefix),
					contract.Contains("breeds/"+breed),
					contract.HasAnySuffix(p.ImageExtensions...),
				),
				contract.Unique(),
			)
		})
	}

	t.Run("unknown breed", func(t *T) {
		t.DisplayName("GET " + breedImagesPath + " - Invalid breed scenario")

		t.GetError(breedImagesEndpoint(p.UnknownBreed, http.StatusNotFound), p.BreedNotFoundMessage)
	})
}
