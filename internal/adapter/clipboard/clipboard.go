package clipboard

import (
	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"protect-connect/internal/usecase"
)

// Compile-time check
var _ usecase.Clipboard = (*systemClipboard)(nil)

// systemClipboard writes to the host system clipboard.
type systemClipboard struct {
	logger *zap.Logger
}

func NewSystemClipboard(logger *zap.Logger) usecase.Clipboard {
	return &systemClipboard{
		logger: logger.Named("SystemClipboard"),
	}
}

// WriteText copies text to the system clipboard. Fire-and-forget from the
// caller's perspective; the error is surfaced only for logging.
func (c *systemClipboard) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		c.logger.Debug("System clipboard unavailable", zap.Error(err))
		return err
	}
	return nil
}
