package cereal

import (
	"math"

	"capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"
	"pfeifer.dev/overlayd/cereal/log"
	"pfeifer.dev/overlayd/utils"
)

type Reader[T any] func(log.Event) (T, error)

type Subscriber[T any] struct {
	Name   string
	Sub    gomsgq.MsgqSubscriber
	reader Reader[T]
}

// Read returns the next message when one is waiting. Messages that fail to decode
// are dropped and logged at debug level.
func (s *Subscriber[T]) Read() (obj T, success bool) {
	data := s.Sub.Read()
	if len(data) == 0 {
		return obj, false
	}
	obj, err := Decode(data, s.reader)
	if err != nil {
		utils.Logde(errors.Wrap(err, "dropping message"), "service", s.Name)
		return obj, false
	}
	return obj, true
}

// Decode unpacks a raw event and hands it to reader.
func Decode[T any](data []byte, reader Reader[T]) (obj T, err error) {
	if len(data) == 0 {
		return obj, errors.New("empty message")
	}
	msg, err := capnp.Unmarshal(data)
	if err != nil {
		return obj, errors.Wrap(err, "could not unmarshal event")
	}

	// allow us to read as much as we want
	msg.ResetReadLimit(math.MaxUint64)

	event, err := log.ReadRootEvent(msg)
	if err != nil {
		return obj, errors.Wrap(err, "could not read root event")
	}

	obj, err = reader(event)
	if err != nil {
		return obj, errors.Wrap(err, "could not read event body")
	}
	return obj, nil
}

func NewSubscriber[T any](name string, reader Reader[T], conflate bool) Subscriber[T] {
	s := Subscriber[T]{Name: name, reader: reader}
	s.Sub.Conflate = conflate
	s.Sub.Init(openQueue(name))
	return s
}

func (s *Subscriber[T]) Close() {
	err, err2 := s.Sub.Msgq.Close()
	if err != nil {
		panic(errors.Wrapf(err, "could not close %s", s.Name))
	}
	if err2 != nil {
		panic(errors.Wrapf(err2, "could not close %s", s.Name))
	}
}
