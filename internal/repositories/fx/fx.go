package fx

import (
	"github.com/nberlot/menu-du-jour-bot/internal/repositories/lastpost"
	"go.uber.org/fx"
)

var Module = fx.Options(
	lastpost.Module,
)
