package htmlutil

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parse(t testing.TB, contents string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contents))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func names(nodes []*html.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		id, ok := Attr(n, "id")
		if !ok {
			id = n.Data
		}
		out[i] = id
	}
	return out
}

const walkFixture = `<div id="root">
	<p id="a">text <b id="b">bold</b> <i id="c"></i></p>
	<meta id="d" itemprop="name" content="x">
	<div id="e">
		<meta id="f">
		<span id="g"><meta id="h"></span>
	</div>
	<span id="i">only text</span>
</div>`

func TestLeavesOrder(t *testing.T) {
	doc := parse(t, walkFixture)
	root := doc.Find("#root").Nodes

	got := names(Leaves(root))
	expected := []string{"b", "c", "d", "f", "h", "i"}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("unexpected leaves (-want +got):\n%s", diff)
	}
}

func TestLeavesFilter(t *testing.T) {
	doc := parse(t, walkFixture)
	root := doc.Find("#root").Nodes

	require.Equal(t, []string{"d", "f", "h"}, names(Leaves(root, "meta")))
	require.Equal(t, []string{"i"}, names(Leaves(root, "span")), "span#g has children so it is never emitted")
	require.Empty(t, Leaves(root, "div"))
}

func TestLeavesNeverEmitsInternalNodes(t *testing.T) {
	doc := parse(t, `<form id="login"><div><input name="a"><button name="b">go</button></div></form>`)

	leaves := Leaves(doc.Find("body").Nodes, "form", "input", "button")
	for _, n := range leaves {
		require.NotEqual(t, "form", n.Data)
		require.Empty(t, ElementChildren(n))
	}
	require.Len(t, leaves, 2)
}

func TestLeavesSiblingList(t *testing.T) {
	doc := parse(t, `<ul><li id="one"></li><li id="two"><a id="three"></a></li></ul>`)
	items := doc.Find("li").Nodes

	require.Equal(t, []string{"one", "three"}, names(Leaves(items)))
	require.Empty(t, Leaves(nil))
}

func TestLeavesDeepNesting(t *testing.T) {
	const depth = 100_000

	root := &html.Node{Type: html.ElementNode, Data: "div"}
	current := root
	for i := 0; i < depth; i++ {
		child := &html.Node{Type: html.ElementNode, Data: "div"}
		current.AppendChild(child)
		current = child
	}
	current.AppendChild(&html.Node{
		Type: html.ElementNode,
		Data: "meta",
		Attr: []html.Attribute{{Key: "id", Val: "deep"}},
	})

	require.Equal(t, []string{"deep"}, names(Leaves([]*html.Node{root}, "meta")))
}

func TestGetAnchors(t *testing.T) {
	doc := parse(t, `<div>
		<a class="product-title" href="/p/1">  First
			product </a>
		<a class="product-title" href="https://example.com/p/2">Second</a>
	</div>`)

	anchors := GetAnchors(context.Background(), doc.Find("a"))
	require.Equal(t, []Anchor{
		{Name: "First product", Href: "/p/1"},
		{Name: "Second", Href: "https://example.com/p/2"},
	}, anchors)
}

func TestParseDocumentCharset(t *testing.T) {
	// "отсутствует" in windows-1251
	body := []byte{0xee, 0xf2, 0xf1, 0xf3, 0xf2, 0xf1, 0xf2, 0xe2, 0xf3, 0xe5, 0xf2}
	contents := append([]byte(`<html><body><span id="x">`), body...)
	contents = append(contents, []byte(`</span></body></html>`)...)

	doc, err := ParseDocument(contents, "text/html; charset=windows-1251")
	require.NoError(t, err)
	require.Equal(t, "отсутствует", doc.Find("#x").Text())
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "a b", CleanText("\n\t a \n\n  b \t"))
}
