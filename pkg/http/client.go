package http

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/phonebook/pkg/log"
)

type (
	ClientOption func(*ClientImpl)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
	}

	ClientImpl struct {
		DestinationName string
		RESTClient      *resty.Client
	}
)

func NewClient(opts ...ClientOption) Client {
	client := ClientImpl{
		DestinationName: "",
		RESTClient:      resty.New(),
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c ClientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.RESTClient.NewRequest().SetContext(ctx)
}

func WithClientDestination(name, url string) ClientOption {
	return func(c *ClientImpl) {
		c.DestinationName = name
		c.RESTClient.SetBaseURL(url)
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			entry := logger.With(log.Fields{
				"destination": c.DestinationName,
				"method":      resp.Request.Method,
				"url":         resp.Request.URL,
				"code":        resp.StatusCode(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				entry.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				entry.Log(resp.Request.Context(), infoLevel, "http call completed")
			}
			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			logger.
				WithField("destination", c.DestinationName).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}
