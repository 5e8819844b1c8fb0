package dohdns

import (
	"github.com/sirupsen/logrus"
)

// Log is a package-global logger used throughout the library. Configuration can be
// changed directly on this instance or the instance replaced.
var Log = logrus.New()

func logger(endpoint, qname string, rtype RType) *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"qname":    qname,
		"qtype":    rtype.String(),
	})
}
