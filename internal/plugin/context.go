package plugin

import (
	"log/slog"

	"github.com/nadia/entitle/internal/config"
	"github.com/nadia/entitle/internal/titlecase"
)

// Context carries shared dependencies into plugins at Init time.
type Context struct {
	WorkDir   string
	ConfigDir string
	Config    *config.Config
	Logger    *slog.Logger

	// Style is the style guide active at startup. Later changes arrive
	// as msg.StyleChangedMsg.
	Style titlecase.Style

	// Tagger is nil when the part-of-speech tagger is disabled.
	Tagger titlecase.Tagger
}
