package outwriter

import (
	"fmt"
	"os"

	"github.com/huangsam/magarea/internal/contract"
)

// LogRunHeader prints a concise header for an evaluation to stderr.
func LogRunHeader(cfg *contract.Config, command string) {
	_, _ = fmt.Fprintf(os.Stderr, "🌍 Regime: %s (Rake: %s)\n", cfg.Regime, cfg.Rake)
	if len(cfg.Values) > 0 {
		_, _ = fmt.Fprintf(os.Stderr, "📏 Command: %s (%d values)\n", command, len(cfg.Values))
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "📏 Command: %s\n", command)
}
