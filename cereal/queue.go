package cereal

import (
	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"
	"pfeifer.dev/overlayd/settings"
)

// openQueue maps the shared memory segment of a service. A service that
// cannot be opened is fatal for every process on the bus.
func openQueue(service string) gomsgq.Msgq {
	q := gomsgq.Msgq{}
	if err := q.Init(service, settings.GetSegmentSize(service)); err != nil {
		panic(errors.Wrapf(err, "could not open %s", service))
	}
	return q
}
