package app

import (
	"context"
	"errors"
	"io"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/redflags/internal/cli"
	"github.com/agbru/redflags/internal/config"
	apperrors "github.com/agbru/redflags/internal/errors"
	"github.com/agbru/redflags/internal/flags"
	"github.com/agbru/redflags/internal/logging"
	"github.com/agbru/redflags/internal/metrics"
	"github.com/agbru/redflags/internal/ocds"
)

// runEvaluate loads the release, evaluates the indicator and presents the report.
func (a *Application) runEvaluate(ctx context.Context, out io.Writer) int {
	id := a.Config.Indicator
	_, span := a.Tracer.Start(ctx, "redflags.evaluate", trace.WithAttributes(
		attribute.String("redflags.indicator", id),
		attribute.Float64("redflags.threshold", a.Config.Threshold),
	))
	defer span.End()

	release, err := a.loadRelease()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "release input")
		a.Logger.Error("loading release failed", err, logging.String("input", a.Config.Input))
		return a.fail(err)
	}
	span.SetAttributes(attribute.String("ocds.ocid", release.OCID))

	indicator, err := a.Registry.Get(id)
	if err != nil {
		return a.fail(apperrors.NewConfigError("%v", err))
	}

	ev, err := indicator.Evaluate(release, a.Config.Threshold)
	if err != nil {
		a.Metrics.RecordOutcome(id, metrics.OutcomeError)
		span.RecordError(err)
		span.SetStatus(codes.Error, "evaluation")
		if errors.Is(err, flags.ErrCurrencyMismatch) {
			a.Logger.Warn("release skipped: currency mismatch",
				logging.String("indicator", id), logging.String("ocid", release.OCID), logging.Err(err))
			err = apperrors.DataQualityError{Indicator: id, Cause: err}
		}
		return a.fail(err)
	}

	a.record(id, release, ev)
	span.SetAttributes(attribute.String("redflags.result", ev.Result.String()))

	report := cli.NewReport(id, release, a.Config.Threshold, ev, a.now())
	outCfg := cli.OutputConfig{Format: a.Config.Format, Quiet: a.Config.Quiet, OutputFile: a.Config.OutputFile}
	if err := cli.DisplayResult(out, report, outCfg); err != nil {
		a.Logger.Error("writing result failed", err)
		return apperrors.ExitErrorGeneric
	}
	if err := cli.WriteReportToFile(outCfg.OutputFile, report); err != nil {
		a.Logger.Error("saving report failed", err, logging.String("path", outCfg.OutputFile))
		return a.fail(apperrors.WrapError(err, "saving report to %s", outCfg.OutputFile))
	}
	return apperrors.ExitSuccess
}

// record updates metrics and logs the outcome.
func (a *Application) record(id string, release *ocds.Release, ev flags.Evaluation) {
	if !ev.Result.Applicable() {
		a.Metrics.RecordOutcome(id, metrics.OutcomeNotApplicable)
		a.Logger.Debug("indicator not applicable",
			logging.String("indicator", id), logging.String("ocid", release.OCID), logging.String("reason", ev.Reason))
		return
	}
	a.Metrics.RecordOutcome(id, ev.Result.String())
	a.Metrics.ObservePercentDiff(id, ev.PercentDiff)
	a.Logger.Info("indicator evaluated",
		logging.String("indicator", id),
		logging.String("ocid", release.OCID),
		logging.Bool("flagged", ev.Result == flags.Flagged),
		logging.Float64("percent_diff", ev.PercentDiff))
}

// loadRelease decodes the release from the configured input.
func (a *Application) loadRelease() (*ocds.Release, error) {
	if a.Config.Input == "" || a.Config.Input == config.StdinInput {
		release, err := ocds.DecodeRelease(a.Stdin)
		if err != nil {
			return nil, apperrors.InputError{Source: "stdin", Cause: err}
		}
		return release, nil
	}

	f, err := os.Open(a.Config.Input)
	if err != nil {
		return nil, apperrors.InputError{Source: a.Config.Input, Cause: err}
	}
	defer f.Close()

	release, err := ocds.DecodeRelease(f)
	if err != nil {
		return nil, apperrors.InputError{Source: a.Config.Input, Cause: err}
	}
	return release, nil
}
