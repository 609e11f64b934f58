package params

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

const (
	LOCK_RETRIES       = 50
	LOCK_FORCE_RETRIES = 30
	LOCK_RETRY_DELAY   = 1 * time.Millisecond
)

var (
	ParamsPath string = "/data/params/d"
	BasePath   string = GetBasePath()
)

// Params
const (
	OVERLAY_SETTINGS = "OverlaySettings"
)

// Exists returns whether the given file or directory exists
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrap(err, "could not check param file stats")
}

// GetBasePath is where snapshots and traces are written.
func GetBasePath() string {
	exists, err := Exists("/data/media/0")
	if err != nil {
		slog.Warn("could not check if /data/media/0 exists", "error", err)
	}
	if exists {
		return "/data/media/0/overlayd"
	}
	return "media/"
}

func EnsureParamDirectories() {
	err := os.MkdirAll(ParamsPath, 0o775)
	if err != nil {
		slog.Warn("could not make params directory", "error", err, "directory", ParamsPath)
	}
}

func ParamPath(key string) string {
	return filepath.Join(ParamsPath, key)
}

func GetParam(key string) ([]byte, error) {
	data, err := os.ReadFile(ParamPath(key))
	if err != nil {
		return nil, errors.Wrapf(err, "could not read param %s", key)
	}
	return data, nil
}

// lock takes the params directory lock shared with openpilot. The returned function
// releases it.
func lock(dir string) (func(), error) {
	lockPath := filepath.Join(filepath.Dir(dir), ".lock")
	fileLock := flock.New(lockPath)

	retries := 0
	for {
		locked, err := fileLock.TryLock()
		if err != nil {
			return nil, errors.Wrap(err, "could not try locking params directory")
		}
		if locked {
			break
		}
		retries += 1
		if retries > LOCK_FORCE_RETRIES {
			// try to force the lock to be removed
			if err := os.Remove(lockPath); err != nil {
				slog.Debug("failed to force delete params lock", "error", err)
			}
		}
		if retries > LOCK_RETRIES {
			return nil, errors.New("could not obtain lock")
		}
		time.Sleep(LOCK_RETRY_DELAY)
	}

	return func() {
		if err := os.Remove(lockPath); err != nil {
			slog.Error("could not remove params lock file", "error", err)
		}
		if err := fileLock.Unlock(); err != nil {
			slog.Error("could not unlock params directory", "error", err)
		}
	}, nil
}

func syncDir(dir string) error {
	directory, err := os.Open(dir)
	if err != nil {
		return errors.Wrap(err, "could not open params directory")
	}
	defer directory.Close()

	err = directory.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync params directory")
	}
	return nil
}

// PutParam atomically replaces a param by writing a synced temp file and renaming it
// under the directory lock.
func PutParam(key string, data []byte) error {
	path := ParamPath(key)
	dir := filepath.Dir(path)
	file, err := os.CreateTemp(dir, ".tmp_value_"+key)
	if err != nil {
		return errors.Wrap(err, "could not create temp param file")
	}
	tmpName := file.Name()
	defer os.Remove(tmpName)
	defer file.Close()

	_, err = file.Write(data)
	if err != nil {
		return errors.Wrap(err, "could not write data to temp param file")
	}

	err = file.Sync()
	if err != nil {
		return errors.Wrap(err, "could not fsync temp param file")
	}

	unlock, err := lock(dir)
	if err != nil {
		return err
	}
	defer unlock()

	err = os.Rename(tmpName, path)
	if err != nil {
		return errors.Wrap(err, "could not move temp param file to persistent location")
	}

	return syncDir(dir)
}
