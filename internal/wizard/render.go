package wizard

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/conn-castle/appdeck/internal/installer"
	"github.com/conn-castle/appdeck/internal/messages"
)

// RenderEvent writes the console line(s) for one installation event.
func RenderEvent(out io.Writer, e installer.Event) {
	switch e.Kind {
	case installer.EventStarted:
		_, _ = fmt.Fprintf(out, messages.RenderStartedFmt, e.Index, e.Total, color.CyanString(e.DisplayName))
	case installer.EventCommandBuilt:
		_, _ = fmt.Fprintf(out, messages.RenderCommandFmt, strings.Join(e.Command, " "))
	case installer.EventDryRunSkipped:
		_, _ = fmt.Fprintf(out, messages.RenderDryRunFmt, color.CyanString(messages.RenderGlyphInfo), e.DisplayName)
	case installer.EventSucceeded:
		_, _ = fmt.Fprintf(out, messages.RenderSucceededFmt, color.GreenString(messages.RenderGlyphOK), e.DisplayName)
	case installer.EventFailed:
		_, _ = fmt.Fprintf(out, messages.RenderFailedFmt, color.RedString(messages.RenderGlyphFail), e.DisplayName)
		if e.Stderr != "" {
			_, _ = fmt.Fprintf(out, messages.RenderStderrFmt, color.RedString(e.Stderr))
		}
	case installer.EventUnknownBackend:
		_, _ = fmt.Fprintf(out, messages.RenderUnknownFmt, color.RedString(messages.RenderGlyphFail), e.DisplayName)
	case installer.EventRunCompleted:
		_, _ = fmt.Fprintf(out, messages.RenderCompletedFmt, e.Attempted, e.Succeeded, e.Failed)
	}
}

// LogEvent records one installation event on the debug log.
func LogEvent(logger *zerolog.Logger, e installer.Event) {
	switch e.Kind {
	case installer.EventStarted:
		logger.Debug().Int("index", e.Index).Int("total", e.Total).Str("app", e.DisplayName).Msg("install started")
	case installer.EventCommandBuilt:
		logger.Info().Strs("command", e.Command).Str("app", e.DisplayName).Msg("command built")
	case installer.EventDryRunSkipped:
		logger.Info().Str("app", e.DisplayName).Msg("dry-run skipped")
	case installer.EventSucceeded:
		logger.Info().Str("app", e.DisplayName).Msg("install succeeded")
	case installer.EventFailed:
		logger.Error().Str("app", e.DisplayName).Str("stderr", e.Stderr).Msg("install failed")
	case installer.EventUnknownBackend:
		logger.Error().Str("app", e.DisplayName).Msg("no backend available")
	case installer.EventRunCompleted:
		logger.Info().Int("attempted", e.Attempted).Int("succeeded", e.Succeeded).Int("failed", e.Failed).Msg("run completed")
	}
}
