package cli

import (
	"strconv"

	"github.com/pkg/errors"

	"pfeifer.dev/overlayd/cereal"
	"pfeifer.dev/overlayd/cereal/log"
)

type SettingType int

const (
	String SettingType = iota
	Float
	Bool
	Int
	None
)

func (t SettingType) String() string {
	switch t {
	case String:
		return "text"
	case Float:
		return "number"
	case Bool:
		return "true/false"
	case Int:
		return "whole number"
	}
	return ""
}

// setInputValue parses value according to t and stores it in the matching field.
func setInputValue(input log.OverlayIn, t SettingType, value string) error {
	switch t {
	case String:
		return input.SetStr(value)
	case Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, "%q is not true or false", value)
		}
		input.SetBool(b)
	case Float:
		f, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return errors.Wrapf(err, "%q is not a number", value)
		}
		input.SetFloat(float32(f))
	case Int:
		i, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return errors.Wrapf(err, "%q is not a whole number", value)
		}
		input.SetInt(int32(i))
	}
	return nil
}

func validator(t SettingType) func(string) error {
	return func(value string) error {
		_, input := cereal.NewMessage(cereal.OverlayInCreator, true)
		return setInputValue(input, t, value)
	}
}

// sendInput publishes a single overlayIn command to the running daemon.
func sendInput(pub *cereal.Publisher[log.OverlayIn], inputType log.OverlayInputType, t SettingType, value string) error {
	msg, input := pub.NewMessage(true)
	input.SetType(inputType)
	if err := setInputValue(input, t, value); err != nil {
		return err
	}
	return pub.Send(msg)
}
