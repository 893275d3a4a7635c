package provider

import (
	"context"
	"net/url"

	"github.com/mitchellh/mapstructure"

	"github.com/glorpus-work/binstash/pkg/download"
	"github.com/glorpus-work/binstash/pkg/errors"
	"github.com/glorpus-work/binstash/pkg/lock"
	"github.com/glorpus-work/binstash/pkg/model"
)

// HTTPProvider fetches artifacts over plain HTTP(S) GET requests via the
// download manager.
type HTTPProvider struct {
	dl download.Manager
}

// NewHTTPProvider creates an HTTP provider backed by the given download manager.
func NewHTTPProvider(dl download.Manager) *HTTPProvider {
	return &HTTPProvider{dl: dl}
}

type httpProviderConfig struct {
	URL          string `mapstructure:"url"`
	ShowProgress bool   `mapstructure:"show_progress"`
}

// FetchArtifact implements Provider.
func (p *HTTPProvider) FetchArtifact(ctx context.Context, providerConfig model.ProviderConfig, destination string, _ lock.FileLock, entry *model.ArtifactEntry) error {
	config, err := decodeHTTPConfig(providerConfig)
	if err != nil {
		return err
	}

	parsedURL, err := url.Parse(config.URL)
	if err != nil {
		return errors.Wrapf(errors.ErrProviderConfig, "invalid url %q", config.URL)
	}

	fetchContext := download.FetchContext{
		Name:          config.URL,
		ContentLength: entry.Size,
		ShowProgress:  config.ShowProgress,
	}
	item := download.Item{URL: parsedURL}
	if err := p.dl.FetchInto(ctx, item, destination, fetchContext); err != nil {
		return errors.Wrapf(err, "failed to fetch `%s`", config.URL)
	}
	return nil
}

func decodeHTTPConfig(providerConfig model.ProviderConfig) (*httpProviderConfig, error) {
	var config httpProviderConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &config})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build config decoder")
	}
	if err := decoder.Decode(map[string]interface{}(providerConfig)); err != nil {
		return nil, errors.Wrap(errors.ErrProviderConfig, err.Error())
	}
	if config.URL == "" {
		return nil, errors.Wrap(errors.ErrProviderConfig, "url is required")
	}
	return &config, nil
}
