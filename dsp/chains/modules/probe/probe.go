// Package probe passes its input through and reports every sample to a
// logger. It is a debugging aid: a probe only costs a level check while
// debug output is off, but reporting allocates.
package probe

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-chains/dsp/chains"
	"github.com/cwbudde/algo-chains/internal/logging"
)

// Params ties parameter ids to this kernel. Probe declares none.
type Params struct{}

// Kernel reports to the process-wide logger, which only shows debug output
// when CHAINS_DEBUG is set.
var Kernel = New(logging.For("probe"))

// New returns a probe kernel type reporting to log at debug level. Each
// instance tags its lines with a sequence number so probes in the same
// graph can be told apart.
func New(log logrus.FieldLogger) *chains.KernelType[Params] {
	var instances atomic.Int64

	return chains.MustDefineKernel[Params]("Probe", nil,
		func(*chains.Inputs[Params], float64) chains.Kernel {
			entry := log.WithField("probe", instances.Add(1))

			return &kernel{
				log:     entry,
				enabled: debugEnabled(entry),
			}
		})
}

// debugEnabled returns a level check for log. Loggers that cannot report
// their level are treated as always enabled.
func debugEnabled(log logrus.FieldLogger) func() bool {
	switch l := log.(type) {
	case *logrus.Entry:
		return func() bool { return l.Logger.IsLevelEnabled(logrus.DebugLevel) }
	case interface{ IsLevelEnabled(logrus.Level) bool }:
		return func() bool { return l.IsLevelEnabled(logrus.DebugLevel) }
	default:
		return func() bool { return true }
	}
}

type kernel struct {
	log     logrus.FieldLogger
	enabled func() bool
	n       int64
}

func (k *kernel) Tick(x float64) float64 {
	// The level is checked per sample; hosts may raise it after compiling.
	if k.enabled() {
		k.log.WithField("n", k.n).Debug(x)
	}

	k.n++

	return x
}
