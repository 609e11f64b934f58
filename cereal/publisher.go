package cereal

import (
	"capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"
	"pfeifer.dev/overlayd/cereal/log"
)

type MessageCreator[T any] func(log.Event) (T, error)

type Publisher[T any] struct {
	Name    string
	Pub     gomsgq.MsgqPublisher
	creator MessageCreator[T]
}

func (p *Publisher[T]) Send(msg *capnp.Message) error {
	b, err := msg.Marshal()
	if err != nil {
		return errors.Wrapf(err, "could not marshal %s message", p.Name)
	}
	p.Pub.Send(b)
	return nil
}

// NewMessage starts a message of the publisher's event type.
func (p *Publisher[T]) NewMessage(valid bool) (msg *capnp.Message, obj T) {
	return NewMessage(p.creator, valid)
}

// NewMessage builds a single segment event stamped with the current monotonic
// time. It only fails when capnp cannot allocate, which panics.
func NewMessage[T any](creator MessageCreator[T], valid bool) (msg *capnp.Message, obj T) {
	msg, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	if err != nil {
		panic(errors.Wrap(err, "could not allocate message"))
	}

	event, err := log.NewRootEvent(seg)
	if err != nil {
		panic(errors.Wrap(err, "could not allocate event"))
	}
	event.SetLogMonoTime(GetTime())
	event.SetValid(valid)

	obj, err = creator(event)
	if err != nil {
		panic(errors.Wrap(err, "could not allocate event body"))
	}
	return msg, obj
}

func NewPublisher[T any](name string, creator MessageCreator[T]) Publisher[T] {
	p := Publisher[T]{Name: name, creator: creator}
	p.Pub.Init(openQueue(name))
	return p
}
