package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"pfeifer.dev/overlayd/cereal"
)

// quickSet walks through a single setting change with plain prompts, for
// terminals where the full screen interface is not usable.
func quickSet() error {
	items := settingsItems()
	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = it.Title()
	}

	sel := promptui.Select{
		Label: "Select Setting",
		Items: titles,
		Size:  len(titles),
	}
	idx, _, err := sel.Run()
	if err != nil {
		return errors.Wrap(err, "prompt failed")
	}
	it := items[idx]

	value := ""
	if it.Type != None {
		prompt := promptui.Prompt{
			Label:    fmt.Sprintf("%s (%s)", it.Title(), it.Type),
			Validate: validator(it.Type),
		}
		value, err = prompt.Run()
		if err != nil {
			return errors.Wrap(err, "prompt failed")
		}
	}

	pub := cereal.NewPublisher("overlayIn", cereal.OverlayInCreator)
	return sendInput(&pub, it.MessageType, it.Type, value)
}
