package core

import (
	"context"
	"errors"
	"strings"
	"wishlist-scraper/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html"
)

var ErrLoginFormNotFound = errors.New("could not find a login form on the login page")

// LoginFormKeywords are matched in order against the id, name and class of
// every <form> on the login page.
var LoginFormKeywords = []string{"login", "auth", "signup"}

type Credentials struct {
	Login    string
	Password string
}

func attrContains(node *html.Node, key, keyword string) bool {
	value, ok := htmlutil.Attr(node, key)
	return ok && strings.Contains(value, keyword)
}

// FindLoginForm returns every form whose id, name or class contains the first
// keyword that matches anything. The result is empty if no keyword matches.
func FindLoginForm(sel *goquery.Selection, keywords ...string) *goquery.Selection {
	if len(keywords) == 0 {
		keywords = LoginFormKeywords
	}

	forms := sel.Find("form")
	for _, keyword := range keywords {
		matched := forms.FilterFunction(func(_ int, s *goquery.Selection) bool {
			node := s.Get(0)
			return attrContains(node, "id", keyword) ||
				attrContains(node, "name", keyword) ||
				attrContains(node, "class", keyword)
		})
		if matched.Length() > 0 {
			return matched
		}
	}
	return forms.Slice(0, 0)
}

// BuildLoginPayload fills in the form fields: a field whose name contains
// "login" gets the login, one containing "password" gets the password, and
// every other named field keeps its current value. Unnamed fields are left
// out.
func BuildLoginPayload(fields []*html.Node, creds Credentials) map[string]string {
	payload := map[string]string{}
	for _, field := range fields {
		name, _ := htmlutil.Attr(field, "name")
		if name == "" {
			continue
		}
		switch {
		case strings.Contains(name, "login"):
			payload[name] = creds.Login
		case strings.Contains(name, "password"):
			payload[name] = creds.Password
		default:
			value, _ := htmlutil.Attr(field, "value")
			payload[name] = value
		}
	}
	return payload
}

// Login fetches the login page, fills in its form and submits it. On success
// the client's cookie jar holds the authenticated session.
func (c *Client) Login(ctx context.Context, creds Credentials) error {
	ctx, span := tracer.Start(ctx, "client:Login")
	defer span.End()

	doc, err := c.GetDocument(ctx, "/login")
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch login page")
		return err
	}

	form := FindLoginForm(doc.Selection)
	if form.Length() == 0 {
		span.SetStatus(codes.Error, ErrLoginFormNotFound.Error())
		return ErrLoginFormNotFound
	}

	fields := htmlutil.Leaves(form.Nodes, "input", "button")
	payload := BuildLoginPayload(fields, creds)
	span.SetAttributes(attribute.Int("payload_fields", len(payload)))

	res, err := c.Http.R().
		SetContext(ctx).
		SetFormData(payload).
		Post("/")
	err = checkResponse("POST", "/", res, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to make login request")
		return err
	}
	return nil
}
