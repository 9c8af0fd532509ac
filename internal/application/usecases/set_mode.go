package usecases

import (
	"context"
	"fmt"

	"wifictl/internal/domain/entities"
	"wifictl/internal/domain/errors"
	"wifictl/internal/domain/interfaces"
	"wifictl/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// SetModeUseCase transitions one wireless interface between monitor and
// managed mode, coordinating the network-management daemon around the
// change.
type SetModeUseCase struct {
	adapter          interfaces.WirelessModeAdapter
	guard            interfaces.DaemonGuard
	recorder         interfaces.TransitionRecorder
	clock            interfaces.Clock
	logger           *logrus.Logger
	enableFallback   bool
	restoreOnFailure bool
}

// NewSetModeUseCase creates a new SetModeUseCase
func NewSetModeUseCase(
	adapter interfaces.WirelessModeAdapter,
	guard interfaces.DaemonGuard,
	recorder interfaces.TransitionRecorder,
	clock interfaces.Clock,
	logger *logrus.Logger,
	enableFallback bool,
	restoreOnFailure bool,
) *SetModeUseCase {
	return &SetModeUseCase{
		adapter:          adapter,
		guard:            guard,
		recorder:         recorder,
		clock:            clock,
		logger:           logger,
		enableFallback:   enableFallback,
		restoreOnFailure: restoreOnFailure,
	}
}

// SetModeInput is the usecase input
type SetModeInput struct {
	Interface entities.InterfaceName
	Mode      entities.Mode
}

// SetModeOutput is the usecase result. The Transition is populated even
// when the returned error is non-nil; the error describes why the result
// is not success.
type SetModeOutput struct {
	Transition entities.Transition
}

// Execute performs the mode transition and returns its classification
func (uc *SetModeUseCase) Execute(ctx context.Context, input SetModeInput) (*SetModeOutput, error) {
	started := uc.clock.Now()

	uc.logger.WithFields(logrus.Fields{
		"interface": input.Interface.String(),
		"mode":      input.Mode.String(),
	}).Info("Mode transition started")

	// Stopping the daemon first keeps it from reverting the mode change
	// underneath us. The guard owns the restart obligation.
	uc.guard.Acquire(ctx)

	result, opErr := uc.transition(ctx, input.Interface, input.Mode)

	uc.settleDaemon(ctx, input.Mode, result)

	transition := entities.Transition{
		Interface: input.Interface,
		Mode:      input.Mode,
		Result:    result,
		StartedAt: started,
		Duration:  uc.clock.Now().Sub(started),
	}

	uc.recorder.RecordTransition(transition)
	metrics.RecordTransition(input.Mode.String(), result.String(), transition.Duration.Seconds())

	if opErr != nil {
		uc.logger.WithError(opErr).WithFields(logrus.Fields{
			"interface": input.Interface.String(),
			"mode":      input.Mode.String(),
			"result":    result.String(),
		}).Error("Mode transition did not succeed")
	} else {
		uc.logger.WithFields(logrus.Fields{
			"interface": input.Interface.String(),
			"mode":      input.Mode.String(),
		}).Info("Mode transition succeeded")
	}

	return &SetModeOutput{Transition: transition}, opErr
}

// transition runs the down / set-type / up sequence and classifies it
func (uc *SetModeUseCase) transition(ctx context.Context, name entities.InterfaceName, mode entities.Mode) (entities.TransitionResult, error) {
	if !uc.adapter.Exists(ctx, name) {
		metrics.RecordError(string(errors.ErrorTypeNotFound))
		return entities.ResultInterfaceNotFound, errors.NewNotFoundError(fmt.Sprintf("interface %s not found", name.String()))
	}

	// The mode-change primitive must never run against an interface that
	// could not be downed.
	if err := uc.adapter.Down(ctx, name); err != nil {
		metrics.RecordError(string(errors.ErrorTypeNetwork))
		return entities.ResultFailed, err
	}

	if err := uc.adapter.SetType(ctx, name, mode); err != nil {
		metrics.RecordError(string(errors.ErrorTypeNetwork))

		if !uc.enableFallback {
			return entities.ResultFailed, err
		}

		// Legacy fallback is best-effort: its errors are swallowed and
		// the result is fallback-attempted whether or not it worked.
		if fallbackErr := uc.adapter.LegacySetType(ctx, name, mode); fallbackErr != nil {
			uc.logger.WithError(fallbackErr).WithField("interface", name.String()).Debug("Legacy fallback primitive failed")
		}
		if upErr := uc.adapter.Up(ctx, name); upErr != nil {
			uc.logger.WithError(upErr).WithField("interface", name.String()).Warn("Failed to bring interface up after fallback")
		}

		return entities.ResultFallbackAttempted, errors.NewNetworkError(
			fmt.Sprintf("mode change failed for %s, legacy fallback attempted", name.String()), err)
	}

	if err := uc.adapter.Up(ctx, name); err != nil {
		// The mode did change, but the interface is left down. Classified
		// as failed, same as a failed mode change; the log line keeps the
		// two distinguishable.
		metrics.RecordError(string(errors.ErrorTypeNetwork))
		uc.logger.WithError(err).WithField("interface", name.String()).Warn("up-failed after mode change")
		return entities.ResultFailed, err
	}

	return entities.ResultSuccess, nil
}

// settleDaemon discharges the guard's restart obligation. The daemon is
// restarted on every path where the guard stopped it, with two exceptions:
// a successful monitor transition (a restarted daemon would revert the
// interface to managed) and, when restore-on-failure is disabled, any
// non-success outcome (bug-compatible with the historical scripts, which
// only restarted the daemon after a successful managed transition).
func (uc *SetModeUseCase) settleDaemon(ctx context.Context, mode entities.Mode, result entities.TransitionResult) {
	if !uc.guard.Stopped() {
		return
	}

	switch {
	case result == entities.ResultSuccess && mode == entities.ModeMonitor:
		uc.guard.Disarm()
	case result != entities.ResultSuccess && !uc.restoreOnFailure:
		uc.logger.WithField("result", result.String()).Warn("Leaving network-management daemon stopped after non-success (restore_on_failure disabled)")
		uc.guard.Disarm()
	}

	if err := uc.guard.Release(ctx); err != nil {
		uc.logger.WithError(err).Warn("Failed to restart network-management daemon")
	}
}
