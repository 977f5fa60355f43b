package zpay32

import "github.com/btcsuite/btclog"

// log is the package-wide logger used by zpay32. It is disabled by default;
// callers that want diagnostic output should call UseLogger with a concrete
// backend, mirroring the rest of the lnd subsystems.
var log btclog.Logger = btclog.Disabled

// UseLogger sets the package-wide logger used by zpay32. This should be
// called before any other zpay32 function if the caller wants log output
// other than the default disabled logger.
func UseLogger(logger btclog.Logger) {
	log = logger
}
