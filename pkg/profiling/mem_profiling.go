package profiling

import (
	"runtime"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

var pprofWriteHeapProfile = pprof.WriteHeapProfile

// DoMemProfiling returns a function that writes a heap profile to filePath.
// Call it once the session is over.
func DoMemProfiling(filePath string, log logrus.FieldLogger) (write func()) {
	return func() {
		f, err := osCreate(filePath)
		if err != nil {
			log.WithError(err).WithField("file", filePath).Error("could not create memory profile")
			return
		}
		defer closeFile(f, log)
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			log.WithError(err).Error("could not write memory profile")
		}
	}
}
