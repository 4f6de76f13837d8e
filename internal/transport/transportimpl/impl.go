package transportimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/nberlot/menu-du-jour-bot/internal/transport"
	"github.com/nberlot/menu-du-jour-bot/pkg/errors"
	"github.com/nberlot/menu-du-jour-bot/pkg/logger"
	"github.com/nberlot/menu-du-jour-bot/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Logger logger.Logger
}

type TransportImpl struct {
	http   *resty.Client
	Logger logger.Logger
}

func New(opts Opts) *TransportImpl {
	return &TransportImpl{
		http:   resty.New().SetTimeout(30 * time.Second),
		Logger: opts.Logger.WithComponent("ImageTransport"),
	}
}

var _ transport.Client = (*TransportImpl)(nil)

// Download fetches the image bytes for a locator. Non-2xx responses and
// empty bodies are errors: the run aborts before any delivery is
// attempted.
func (t *TransportImpl) Download(ctx context.Context, locator string) ([]byte, error) {
	var data []byte

	err := retry.Do(ctx, t.Logger, "download image", func() error {
		resp, err := t.http.R().SetContext(ctx).Get(locator)
		if err != nil {
			return err
		}
		if resp.IsError() {
			return fmt.Errorf("image returned status %d", resp.StatusCode())
		}
		if len(resp.Body()) == 0 {
			return fmt.Errorf("empty image body")
		}
		data = resp.Body()
		return nil
	}, retry.DefaultConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to download image")
	}

	t.Logger.Info("Downloaded image", "locator", locator, "bytes", len(data))
	return data, nil
}
