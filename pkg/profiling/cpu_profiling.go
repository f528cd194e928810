package profiling

import (
	"io"
	"os"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile

// DoCPUProfiling starts CPU profiling into filePath and returns the function
// that stops it. Failures are logged and yield a no-op stop function.
func DoCPUProfiling(filePath string, log logrus.FieldLogger) (stop func()) {
	f, err := osCreate(filePath)
	if err != nil {
		log.WithError(err).WithField("file", filePath).Error("could not create CPU profile")
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.WithError(err).Error("could not start CPU profile")
		closeFile(f, log)
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		closeFile(f, log)
	}
}

func closeFile(f io.Closer, log logrus.FieldLogger) {
	if err := f.Close(); err != nil {
		log.WithError(err).Error("could not close profile file")
	}
}
