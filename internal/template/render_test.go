package template

import (
	"strings"
	"testing"
)

func TestRender_ReplacesEveryToken(t *testing.T) {
	t.Parallel()

	ctx := NewContext("my-cool-plugin", "A test plugin", testConfig())

	text := strings.Join(Tokens, "|")
	got := Render(text, ctx)

	want := strings.Join([]string{
		"my-cool-plugin",
		"my_cool_plugin",
		"MyCoolPlugin",
		"A test plugin",
		"Jane Doe",
		"0.1.0",
		"Acme Audio",
		"https://acme.example",
		"jane@acme.example",
		"https://github.com/robbert-vdh/nih-plug.git",
	}, "|")

	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	for _, token := range Tokens {
		if strings.Contains(got, token) {
			t.Errorf("output still contains %s", token)
		}
	}
}

func TestRender_OrderIndependent(t *testing.T) {
	t.Parallel()

	ctx := NewContext("gain", "desc", testConfig())

	// Every permutation of the tokens renders to the permutation of the values.
	reversed := make([]string, len(Tokens))
	for i, token := range Tokens {
		reversed[len(Tokens)-1-i] = token
	}

	forward := Render(strings.Join(Tokens, "\n"), ctx)
	backward := Render(strings.Join(reversed, "\n"), ctx)

	fwdLines := strings.Split(forward, "\n")
	bwdLines := strings.Split(backward, "\n")

	for i := range fwdLines {
		if fwdLines[i] != bwdLines[len(bwdLines)-1-i] {
			t.Errorf("line %d: forward %q, backward %q", i, fwdLines[i], bwdLines[len(bwdLines)-1-i])
		}
	}
}

func TestRender_RepeatedTokens(t *testing.T) {
	t.Parallel()

	ctx := NewContext("gain", "", testConfig())

	got := Render("%%PROJECT_NAME_CAMELCASE%% and %%PROJECT_NAME_CAMELCASE%%Params", ctx)
	if want := "Gain and GainParams"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_ValuesAreNotRescanned(t *testing.T) {
	t.Parallel()

	ctx := NewContext("gain", "uses %%VENDOR%% literally", testConfig())

	got := Render("%%PROJECT_DESCRIPTION%%", ctx)
	if want := "uses %%VENDOR%% literally"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_UnknownTokensLeftVerbatim(t *testing.T) {
	t.Parallel()

	ctx := NewContext("gain", "", testConfig())

	got := Render("%%UNKNOWN%% %%PROJECT_NAME%%", ctx)
	if want := "%%UNKNOWN%% gain"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_NilConfigLeavesConfigTokens(t *testing.T) {
	t.Parallel()

	ctx := NewContext("gain", "", nil)

	got := Render("%%PROJECT_NAME%% %%VENDOR%%", ctx)
	if want := "gain %%VENDOR%%"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_IsPure(t *testing.T) {
	t.Parallel()

	ctx := NewContext("gain", "d", testConfig())
	text := "%%PROJECT_NAME%%-%%VENDOR%%"

	first := Render(text, ctx)
	second := Render(text, ctx)

	if first != second {
		t.Errorf("Render() not deterministic: %q vs %q", first, second)
	}

	if ctx.ProjectName != "gain" {
		t.Error("Render() modified the context")
	}
}
