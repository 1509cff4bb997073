package errutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rebranch/pkg/domain/model"
	"github.com/m-mizutani/rebranch/pkg/utils/errutil"
)

func TestHandleError(t *testing.T) {
	t.Run("handle error with context", func(t *testing.T) {
		ctx := context.Background()
		err := errors.New("test error")

		// Should not panic
		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("handle nil error", func(t *testing.T) {
		ctx := context.Background()

		// Should not panic
		errutil.HandleError(ctx, "test message", nil)
	})
}

func TestHandleRenameError(t *testing.T) {
	err := goerr.Wrap(&model.RenameError{
		Repo:      "alice/alpha",
		Step:      model.RenameStepCreateRef,
		Completed: model.RenameStepResolveRef,
		Err:       errors.New("422 Reference already exists"),
	}, "batch failed")

	// Should not panic
	errutil.HandleError(context.Background(), "rename failed", err)
}
