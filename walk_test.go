package a11ykit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func visitedNames(root *Node, cfg *Config) []string {
	var names []string
	Walk(root, cfg, func(n *Node) {
		names = append(names, n.Name)
	})
	return names
}

// buildForm returns:
//
//	form
//	├── header
//	│   └── title
//	├── body
//	│   ├── email
//	│   └── password
//	└── footer
func buildForm() *Node {
	form := NewContainer("form")
	header := NewContainer("header")
	header.AddChild(NewLabel("title", "Sign in"))
	body := NewContainer("body")
	body.AddChild(NewTextField("email", "Email"))
	body.AddChild(NewTextField("password", "Password"))
	form.AddChild(header)
	form.AddChild(body)
	form.AddChild(NewContainer("footer"))
	return form
}

func TestWalkPreOrder(t *testing.T) {
	cfg := DefaultConfig()
	got := visitedNames(buildForm(), &cfg)
	want := []string{"form", "header", "title", "body", "email", "password", "footer"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkPrunesExcludedSubtrees(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(form *Node, cfg *Config)
		want   []string
	}{
		{
			name:   "hidden",
			mutate: func(form *Node, cfg *Config) { form.FindByName("body").Hidden = true },
			want:   []string{"form", "header", "title", "footer"},
		},
		{
			name:   "transparent",
			mutate: func(form *Node, cfg *Config) { form.FindByName("header").Alpha = 0.005 },
			want:   []string{"form", "body", "email", "password", "footer"},
		},
		{
			name: "excluded tag",
			mutate: func(form *Node, cfg *Config) {
				form.FindByName("body").Tag = 99
				cfg.ExcludeTags(99)
			},
			want: []string{"form", "header", "title", "footer"},
		},
		{
			name: "excluded class name",
			mutate: func(form *Node, cfg *Config) {
				form.FindByName("header").ClassName = "NavigationBar"
				cfg.ExcludeClassNames("NavigationBar")
			},
			want: []string{"form", "body", "email", "password", "footer"},
		},
		{
			name:   "private class prefix",
			mutate: func(form *Node, cfg *Config) { form.FindByName("email").ClassName = "_SystemField" },
			want:   []string{"form", "header", "title", "body", "password", "footer"},
		},
		{
			name:   "excluded root",
			mutate: func(form *Node, cfg *Config) { form.Hidden = true },
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := buildForm()
			cfg := DefaultConfig()
			tt.mutate(form, &cfg)
			got := visitedNames(form, &cfg)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("visited mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShouldProcessMinimumSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinimumElementSize = Vec2{X: 10, Y: 10}

	n := NewLabel("tiny", "x")
	n.Bounds = Rect{Width: 9, Height: 40}
	if ShouldProcess(n, &cfg) {
		t.Error("node narrower than the minimum should be excluded")
	}
	n.Bounds.Width = 10
	if !ShouldProcess(n, &cfg) {
		t.Error("node at the minimum size should be processed")
	}
}

func TestShouldProcessIgnoresAncestors(t *testing.T) {
	cfg := DefaultConfig()
	parent := NewContainer("parent")
	parent.Hidden = true
	child := NewLabel("child", "Visible")
	parent.AddChild(child)

	if !ShouldProcess(child, &cfg) {
		t.Error("ShouldProcess consults only the node itself")
	}
}

func TestShouldProcessAlphaBoundary(t *testing.T) {
	cfg := DefaultConfig()
	n := NewLabel("faint", "x")

	n.Alpha = minimumVisibleAlpha
	if ShouldProcess(n, &cfg) {
		t.Error("alpha at the threshold counts as hidden")
	}
	n.Alpha = 0.02
	if !ShouldProcess(n, &cfg) {
		t.Error("alpha above the threshold should be processed")
	}
}

func TestWalkNilRoot(t *testing.T) {
	cfg := DefaultConfig()
	Walk(nil, &cfg, func(*Node) { t.Error("visit called for nil root") })
}
