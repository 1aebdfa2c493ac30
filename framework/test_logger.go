package framework

// TestLogger receives notifications as a test run progresses. TestFinished is called once for each
// recorded TestResult, immediately after the check completes.
type TestLogger interface {
	TestStarted(id TestID)
	TestFinished(result TestResult, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                      {}
func (n nullTestLogger) TestFinished(TestResult, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)              {}
