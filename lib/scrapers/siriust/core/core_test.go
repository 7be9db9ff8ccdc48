package core

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"wishlist-scraper/lib/htmlutil"
	"wishlist-scraper/lib/telemetry"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const loginPage = `<html><body>
<form id="search_form" action="/search"><input name="q" value=""></form>
<form name="main_login_form" class="cm-processed-form" action="/" method="post">
	<input type="hidden" name="return_url" value="index.php">
	<div class="control-group">
		<input type="text" id="login_main_login" name="user_login" value="">
	</div>
	<div class="control-group password">
		<input type="password" id="psw_main_login" name="user_password" value="">
	</div>
	<label><input type="checkbox" name="remember" value="1"> remember me</label>
	<div class="buttons-container"><button class="ty-btn" type="submit" name="dispatch[auth.login]">Войти</button></div>
	<input type="submit" value="unnamed">
</form>
</body></html>`

func parse(t testing.TB, contents string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contents))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestFindLoginForm(t *testing.T) {
	doc := parse(t, `<body>
		<form id="newsletter-signup"></form>
		<form class="auth-form" id="first-auth"></form>
		<form name="oauth" id="second-auth"></form>
	</body>`)

	form := FindLoginForm(doc.Selection)
	require.Equal(t, 2, form.Length())
	require.Equal(t, "first-auth", form.First().AttrOr("id", ""))

	form = FindLoginForm(doc.Selection, "signup")
	require.Equal(t, "newsletter-signup", form.AttrOr("id", ""))

	form = FindLoginForm(doc.Selection, "register")
	require.Equal(t, 0, form.Length())
}

func TestFindLoginFormPrefersEarlierKeyword(t *testing.T) {
	doc := parse(t, loginPage)
	form := FindLoginForm(doc.Selection)
	require.Equal(t, 1, form.Length())
	require.Equal(t, "main_login_form", form.AttrOr("name", ""))
}

func TestBuildLoginPayload(t *testing.T) {
	doc := parse(t, `<form id="login">
		<input name="user_login" value="">
		<div><input name="user_password" value="old"></div>
		<input name="remember" value="1">
		<button type="submit" name="dispatch[auth.login]">go</button>
		<input type="submit" value="go">
	</form>`)

	fields := htmlutil.Leaves(FindLoginForm(doc.Selection).Nodes, "input", "button")
	payload := BuildLoginPayload(fields, Credentials{Login: "a@b.com", Password: "secret"})

	expected := map[string]string{
		"user_login":           "a@b.com",
		"user_password":        "secret",
		"remember":             "1",
		"dispatch[auth.login]": "a@b.com",
	}
	if diff := cmp.Diff(expected, payload); diff != "" {
		t.Fatalf("unexpected payload (-want +got):\n%s", diff)
	}
}

type mockSite struct {
	loginStatus int
	loginPage   string
	posted      chan map[string]string
}

func (m mockSite) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		if m.loginStatus != 0 {
			w.WriteHeader(m.loginStatus)
			return
		}
		w.Header().Set("content-type", "text/html; charset=utf-8")
		w.Write([]byte(m.loginPage))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		err := r.ParseForm()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		got := map[string]string{}
		for k := range r.PostForm {
			got[k] = r.PostForm.Get(k)
		}
		m.posted <- got
		http.SetCookie(w, &http.Cookie{Name: "sid", Value: "authenticated", Path: "/"})
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/profiles-update/", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("sid")
		if err != nil || cookie.Value != "authenticated" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`<div id="content_general"></div>`))
	})
	return mux
}

func newTestClient(t testing.TB, url string) *Client {
	client, err := NewClient(ClientOptions{BaseUrl: url, Timeout: time.Second * 5})
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func TestLogin(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/siriust/core")
	defer cleanup()

	site := mockSite{loginPage: loginPage, posted: make(chan map[string]string, 1)}
	server := httptest.NewServer(site.handler())
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	client := newTestClient(t, server.URL)

	_, err := client.GetDocument(ctx, "/profiles-update/")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)

	err = client.Login(ctx, Credentials{Login: "a@b.com", Password: "secret"})
	require.NoError(t, err)

	posted := <-site.posted
	expected := map[string]string{
		"return_url":           "index.php",
		"user_login":           "a@b.com",
		"user_password":        "secret",
		"remember":             "1",
		// every field with "login" in its name carries the login, the
		// submit button's dispatch[auth.login] included
		"dispatch[auth.login]": "a@b.com",
	}
	if diff := cmp.Diff(expected, posted); diff != "" {
		t.Fatalf("unexpected login payload (-want +got):\n%s", diff)
	}

	doc, err := client.GetDocument(ctx, "/profiles-update/")
	require.NoError(t, err)
	require.Equal(t, 1, doc.Find("#content_general").Length())
}

func TestLoginErrors(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	t.Run("StatusError", func(t *testing.T) {
		server := httptest.NewServer(mockSite{loginStatus: http.StatusServiceUnavailable}.handler())
		defer server.Close()

		err := newTestClient(t, server.URL).Login(ctx, Credentials{})
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		require.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
		require.Contains(t, statusErr.Error(), "/login")
	})

	t.Run("NoForm", func(t *testing.T) {
		server := httptest.NewServer(mockSite{loginPage: `<form id="search"></form>`}.handler())
		defer server.Close()

		err := newTestClient(t, server.URL).Login(ctx, Credentials{})
		require.ErrorIs(t, err, ErrLoginFormNotFound)
	})
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(ClientOptions{BaseUrl: "siriust.ru"})
	require.Error(t, err)

	client, err := NewClient(ClientOptions{BaseUrl: "https://siriust.ru/"})
	require.NoError(t, err)
	require.Equal(t, "https://siriust.ru", client.Http.BaseURL)
	require.Equal(t, DefaultUserAgent, client.Http.Header.Get("user-agent"))
	require.Equal(t, "https://siriust.ru/", client.Http.Header.Get("referer"))
	require.Equal(t, "siriust.ru", client.BaseUrl.Host)
}
