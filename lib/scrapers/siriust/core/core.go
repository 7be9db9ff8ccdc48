package core

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
	"wishlist-scraper/lib/htmlutil"
	"wishlist-scraper/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultBaseUrl   = "https://siriust.ru"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/112.0.0.0 Safari/537.36"
	DefaultTimeout   = time.Second * 30
)

// StatusError is returned for any response outside of the 2xx range.
type StatusError struct {
	Method     string
	Url        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %s", e.Method, e.Url, e.Status)
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	BaseUrl string
	// defaults to DefaultUserAgent
	UserAgent string
	// defaults to DefaultTimeout
	Timeout time.Duration
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	baseUrl, err := url.Parse(strings.TrimRight(opts.BaseUrl, "/"))
	if err != nil {
		return nil, err
	}
	if baseUrl.Scheme == "" || baseUrl.Host == "" {
		return nil, fmt.Errorf("base url '%s' must be absolute", opts.BaseUrl)
	}
	origin := baseUrl.String()

	client := resty.New()
	client.SetBaseURL(origin)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeaders(map[string]string{
		"content-type": "application/x-www-form-urlencoded",
		"origin":       origin,
		"referer":      origin + "/",
		"user-agent":   opts.UserAgent,
	})
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(opts.Timeout)

	restyutil.InstrumentClient(client, tracer, restyInstrumentOutput)

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}

func checkResponse(method, link string, res *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, link, err)
	}
	if res.IsError() || res.StatusCode() < 200 || res.StatusCode() > 299 {
		return &StatusError{
			Method:     method,
			Url:        res.Request.URL,
			StatusCode: res.StatusCode(),
			Status:     res.Status(),
		}
	}
	return nil
}

// GetDocument fetches `link` (relative to the base url or absolute) and
// parses the response as html.
func (c *Client) GetDocument(ctx context.Context, link string) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "client:GetDocument", trace.WithAttributes(
		attribute.String("link", link),
	))
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get(link)
	err = checkResponse("GET", link, res, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}

	doc, err := htmlutil.ParseDocument(res.Body(), res.Header().Get("content-type"))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}
	return doc, nil
}
