package dogtests

import (
	"github.com/dog-api-tests/dog-api-contract-tests/contract"
	"github.com/dog-api-tests/dog-api-contract-tests/framework"
)

// RunTestSuite runs every test group, in order, using a single shared client.
func RunTestSuite(
	client *contract.Client,
	params Params,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{
			context: c,
			env: &environment{
				client: client,
				params: params,
			},
		}

		t.RunGroup("breeds list", DoBreedsListTests)
		t.RunGroup("images by breed", DoBreedImagesTests)
		t.RunGroup("random image", DoRandomImageTests)
	})
}
