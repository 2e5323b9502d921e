package frond

import (
	"strings"
	"testing"

	"github.com/frond-ui/frond/pkg/dom"
	"github.com/frond-ui/frond/pkg/el"
	"github.com/frond-ui/frond/pkg/reactive"
	"github.com/frond-ui/frond/pkg/router"
)

func TestAppMountAndSerialize(t *testing.T) {
	app := New()
	app.Mount(el.Div(el.Class("root"), "hello"))

	html := app.HTML()
	if !strings.Contains(html, `<div class="root">hello</div>`) {
		t.Errorf("unexpected document HTML: %s", html)
	}
}

func TestCounterEndToEnd(t *testing.T) {
	app := New()
	count := reactive.NewCell(0)

	var button *dom.Node
	app.Mount(func() *dom.Node {
		button = el.Button(
			el.OnClick(func(*dom.Event) { count.Update(func(n int) int { return n + 1 }) }),
			"increment",
		)
		return el.Div(button, el.BindText(app.Lifecycle(), count))
	})

	button.DispatchEvent("click", nil)
	button.DispatchEvent("click", nil)

	if count.Get() != 2 {
		t.Fatalf("expected count 2, got %d", count.Get())
	}
	if !strings.Contains(app.HTML(), ">2") {
		t.Errorf("bound text should render 2, got %s", app.HTML())
	}
}

func TestAppRouterNavigationCleansUp(t *testing.T) {
	app := New()
	count := reactive.NewCell(0)

	var bound *dom.Node
	app.Router().
		Route("/", func(router.Params) *dom.Node {
			bound = el.BindText(app.Lifecycle(), count)
			return el.Div(bound)
		}).
		Route("/away", func(router.Params) *dom.Node {
			return el.Div("away")
		})
	app.Router().Start()

	count.Set(1)
	if bound.Text() != "1" {
		t.Fatal("binding should be live on the home route")
	}

	app.Router().Navigate("/away")
	app.Flush()

	count.Set(2)
	if bound.Text() != "1" {
		t.Errorf("stale route binding should be torn down, got %q", bound.Text())
	}
	if !strings.Contains(app.HTML(), "away") {
		t.Errorf("expected away page, got %s", app.HTML())
	}
}
