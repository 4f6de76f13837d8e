package fetcherimpl

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/nberlot/menu-du-jour-bot/internal/fetcher"
	"github.com/nberlot/menu-du-jour-bot/pkg/config"
	"github.com/nberlot/menu-du-jour-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type FetcherImpl struct {
	http   *resty.Client
	Logger logger.Logger
	Config *config.Config
}

func New(opts Opts) *FetcherImpl {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36").
		SetHeader("Accept-Language", "fr-FR,fr;q=0.9")

	return &FetcherImpl{
		http:   client,
		Logger: opts.Logger.WithComponent("Fetcher"),
		Config: opts.Config,
	}
}

var _ fetcher.Client = (*FetcherImpl)(nil)
