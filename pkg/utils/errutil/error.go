package errutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/rebranch/pkg/domain/model"
	"github.com/m-mizutani/rebranch/pkg/utils/logging"
)

// HandleError logs err and sends it to Sentry. A rename failure is tagged
// with the repository and the step it stopped at.
func HandleError(ctx context.Context, msg string, err error) {
	runID, _ := logging.CtxRunID(ctx)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("run_id", runID.String())

		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}

		var renameErr *model.RenameError
		if errors.As(err, &renameErr) {
			scope.SetTag("repo", renameErr.Repo)
			scope.SetTag("rename_step", string(renameErr.Step))
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}
