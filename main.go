package main

import (
	"log/slog"
	"time"

	"pfeifer.dev/overlayd/cereal"
	"pfeifer.dev/overlayd/cereal/log"
	"pfeifer.dev/overlayd/cli"
	"pfeifer.dev/overlayd/params"
	ms "pfeifer.dev/overlayd/settings"
	"pfeifer.dev/overlayd/utils"
)

func main() {
	cli.Handle()

	params.EnsureParamDirectories()
	ms.Settings.LoadWithRetries(5)

	modelSub := cereal.NewSubscriber("modelV2", cereal.ModelV2Reader, true)
	defer modelSub.Close()
	calibSub := cereal.NewSubscriber("liveCalibration", cereal.LiveCalibrationReader, true)
	defer calibSub.Close()
	radarSub := cereal.NewSubscriber("radarState", cereal.RadarStateReader, true)
	defer radarSub.Close()
	carSub := cereal.NewSubscriber("carState", cereal.CarStateReader, true)
	defer carSub.Close()
	selfdriveSub := cereal.NewSubscriber("selfdriveState", cereal.SelfdriveStateReader, true)
	defer selfdriveSub.Close()
	inputSub := cereal.NewSubscriber("overlayIn", cereal.OverlayInReader, false)
	defer inputSub.Close()

	pub := cereal.NewPublisher("overlayOut", cereal.OverlayOutCreator)

	state := State{}
	state.Init(&ms.Settings)
	slog.Info("overlayd started")

	for {
		time.Sleep(ms.LOOP_DELAY)
		now := time.Now()

		if input, ok := inputSub.Read(); ok {
			ms.Settings.Handle(input)
			state.Configure(&ms.Settings)
		}

		if calib, ok := calibSub.Read(); ok {
			utils.Logwe(state.UpdateCalibration(calib, now))
		}
		if radar, ok := radarSub.Read(); ok {
			utils.Logwe(state.UpdateRadar(radar, now))
		}
		if car, ok := carSub.Read(); ok {
			state.Car.Update(car, now)
		}
		if selfdrive, ok := selfdriveSub.Read(); ok {
			state.Car.UpdateSelfdrive(selfdrive, now)
		}
		if model, ok := modelSub.Read(); ok {
			utils.Logwe(state.UpdateModel(model, now))
		}

		scene, ok := state.Frame(now, &ms.Settings)
		if !ok {
			continue
		}

		msg, out := pub.NewMessage(true)
		if err := cereal.EncodeScene(out, scene); err != nil {
			utils.Loge(err, "frame", scene.FrameID)
			continue
		}
		logOutput(out)
		utils.Loge(pub.Send(msg))
	}
}

func logOutput(out log.OverlayOut) {
	lockOns, _ := out.LockOns()
	leads, _ := out.Leads()
	slog.Debug("overlayOut",
		"frameId", out.FrameId(),
		"wideCam", out.WideCam(),
		"lockQuality", out.LockQuality(),
		"lockOns", lockOns.Len(),
		"leads", leads.Len(),
	)
}
