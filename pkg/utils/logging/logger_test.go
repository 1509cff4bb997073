package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/rebranch/pkg/domain/types"
	"github.com/m-mizutani/rebranch/pkg/utils/logging"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() {
		_ = logging.Configure("text", "info", "stderr")
	})

	t.Run("configure with json format to stdout", func(t *testing.T) {
		err := logging.Configure("json", "info", "stdout")
		gt.NoError(t, err)
	})

	t.Run("configure with text format", func(t *testing.T) {
		err := logging.Configure("text", "debug", "-")
		gt.NoError(t, err)
	})

	t.Run("configure with invalid format returns error", func(t *testing.T) {
		err := logging.Configure("invalid", "info", "stdout")
		gt.Error(t, err)
	})

	t.Run("configure with invalid level returns error", func(t *testing.T) {
		err := logging.Configure("json", "invalid", "stdout")
		gt.Error(t, err)
	})

	t.Run("token is masked in file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rebranch.log")
		gt.NoError(t, logging.Configure("json", "info", path))

		logging.Default().Info("configured", "token", types.GitHubToken("ghp_abcdefghijklmnop"))

		raw := gt.R1(os.ReadFile(path)).NoError(t)
		gt.S(t, string(raw)).Contains("configured")
		gt.S(t, string(raw)).NotContains("ghp_abcdefghijklmnop")
	})
}

func TestClose(t *testing.T) {
	t.Cleanup(func() {
		_ = logging.Configure("text", "info", "stderr")
	})

	t.Run("reconfigure switches to the new file", func(t *testing.T) {
		first := filepath.Join(t.TempDir(), "first.log")
		second := filepath.Join(t.TempDir(), "second.log")

		gt.NoError(t, logging.Configure("json", "info", first))
		logging.Default().Info("to first")
		gt.NoError(t, logging.Configure("json", "info", second))
		logging.Default().Info("to second")
		gt.NoError(t, logging.Close())

		firstRaw := gt.R1(os.ReadFile(first)).NoError(t)
		gt.S(t, string(firstRaw)).Contains("to first")
		gt.S(t, string(firstRaw)).NotContains("to second")

		secondRaw := gt.R1(os.ReadFile(second)).NoError(t)
		gt.S(t, string(secondRaw)).Contains("to second")
	})

	t.Run("logs after close do not reach the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "closed.log")
		gt.NoError(t, logging.Configure("json", "info", path))
		logging.Default().Info("before close")
		gt.NoError(t, logging.Close())
		logging.Default().Info("after close")

		raw := gt.R1(os.ReadFile(path)).NoError(t)
		gt.S(t, string(raw)).Contains("before close")
		gt.S(t, string(raw)).NotContains("after close")
	})

	t.Run("close without file output is a no-op", func(t *testing.T) {
		gt.NoError(t, logging.Configure("text", "info", "stderr"))
		gt.NoError(t, logging.Close())
		gt.NoError(t, logging.Close())
	})
}

func TestDefault(t *testing.T) {
	logger := logging.Default()
	logger.Info("test message", "key", "value")
}
