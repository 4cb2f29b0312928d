package main

import (
	"fmt"
	"net/http/httptest"
	"os"

	"github.com/dog-api-tests/dog-api-contract-tests/contract"
	"github.com/dog-api-tests/dog-api-contract-tests/dogtests"
	"github.com/dog-api-tests/dog-api-contract-tests/fakeapi"
	"github.com/dog-api-tests/dog-api-contract-tests/framework"
	"github.com/dog-api-tests/dog-api-contract-tests/report"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var params commandParams
	if err := params.Read(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Invalid parameters: %s\n", err)
		return 1
	}

	logger := params.newLogger()

	if !params.SelfTest {
		return runSuite(params, params.URL, params.suiteParams(), logger)
	}

	var status int
	fake := fakeapi.NewServer(fakeapi.DefaultData(), framework.LoggerWithPrefix(logger, "[fake API] "))
	httphelpers.WithServer(fake, func(server *httptest.Server) {
		suiteParams := params.suiteParams()
		suiteParams.RouteEchoBaseURL = fakeapi.EchoBaseURL(server.URL)
		logger.WithField("url", server.URL).Info("Started fake dog API")
		status = runSuite(params, server.URL, suiteParams, logger)
	})
	return status
}

func runSuite(params commandParams, baseURL string, suiteParams dogtests.Params, logger *logrus.Logger) int {
	clientConfig := contract.DefaultConfig(baseURL)
	clientConfig.Timeout = params.Timeout
	client, err := contract.NewClient(clientConfig)
	if err != nil {
		logger.WithError(err).Error("couldn't create HTTP client")
		return 1
	}
	defer client.Close()
	logger.WithField("url", client.BaseURL()).Info("Testing dog API")

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.Debug || params.DebugAll,
		DebugOutputOnSuccess: params.DebugAll,
	}

	results := dogtests.RunTestSuite(client, suiteParams, params.filters, testLogger)

	fmt.Println()
	report.PrintSummary(os.Stdout, results)
	fmt.Println()
	framework.PrintResults(os.Stdout, results)

	if len(params.ReportFormat) != 0 {
		paths, err := report.Write(params.ReportPath, params.ReportName, params.ReportFormat, results)
		for _, p := range paths {
			logger.WithField("path", p).Info("Report written")
		}
		if err != nil {
			logger.WithError(err).Error("couldn't write report")
			return 1
		}
	}

	if !results.OK() {
		return 1
	}
	if results.Ran() == 0 {
		logger.Error("No tests were run; check the --run and --skip patterns")
		return 1
	}
	return 0
}
