package camera

import (
	"math"

	"gonum.org/v1/gonum/mat"
	m "pfeifer.dev/overlayd/math"
)

// Calibration holds the live view-from-calibrated-frame rotations for both road
// cameras.
type Calibration struct {
	ViewFromCalib     m.Mat3
	ViewFromWideCalib m.Mat3
}

// DefaultCalibration assumes a perfectly mounted device.
func DefaultCalibration() Calibration {
	return Calibration{
		ViewFromCalib:     VIEW_FROM_DEVICE,
		ViewFromWideCalib: VIEW_FROM_DEVICE,
	}
}

func (c Calibration) ForStream(wide bool) m.Mat3 {
	if wide {
		return c.ViewFromWideCalib
	}
	return c.ViewFromCalib
}

// CalibrationFromEuler builds both view rotations from the calibrated roll, pitch and
// yaw of the device and the extrinsic euler angles of the wide camera relative to the
// device. Vectors shorter than three elements are treated as zero rotation.
func CalibrationFromEuler(rpyCalib []float64, wideFromDeviceEuler []float64) Calibration {
	viewFromDevice := toDense(VIEW_FROM_DEVICE)
	deviceFromCalib := eulerToRot(rpyCalib)
	wideFromDevice := eulerToRot(wideFromDeviceEuler)

	var viewFromCalib mat.Dense
	viewFromCalib.Mul(viewFromDevice, deviceFromCalib)

	var wideFromCalib, viewFromWideCalib mat.Dense
	wideFromCalib.Mul(wideFromDevice, deviceFromCalib)
	viewFromWideCalib.Mul(viewFromDevice, &wideFromCalib)

	return Calibration{
		ViewFromCalib:     fromDense(&viewFromCalib),
		ViewFromWideCalib: fromDense(&viewFromWideCalib),
	}
}

// eulerToRot returns Rz(yaw) * Ry(pitch) * Rx(roll).
func eulerToRot(rpy []float64) *mat.Dense {
	if len(rpy) < 3 {
		return toDense(m.Identity3())
	}
	roll, pitch, yaw := rpy[0], rpy[1], rpy[2]
	cr, sr := math.Cos(roll), math.Sin(roll)
	cp, sp := math.Cos(pitch), math.Sin(pitch)
	cy, sy := math.Cos(yaw), math.Sin(yaw)

	rx := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, cr, -sr,
		0, sr, cr,
	})
	ry := mat.NewDense(3, 3, []float64{
		cp, 0, sp,
		0, 1, 0,
		-sp, 0, cp,
	})
	rz := mat.NewDense(3, 3, []float64{
		cy, -sy, 0,
		sy, cy, 0,
		0, 0, 1,
	})

	var zy, zyx mat.Dense
	zy.Mul(rz, ry)
	zyx.Mul(&zy, rx)
	return &zyx
}

func toDense(a m.Mat3) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		a[0][0], a[0][1], a[0][2],
		a[1][0], a[1][1], a[1][2],
		a[2][0], a[2][1], a[2][2],
	})
}

func fromDense(d mat.Matrix) m.Mat3 {
	var res m.Mat3
	for i := range 3 {
		for j := range 3 {
			res[i][j] = d.At(i, j)
		}
	}
	return res
}
