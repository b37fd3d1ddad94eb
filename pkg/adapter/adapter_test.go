package adapter_test

import (
	"strings"
	"testing"

	"github.com/go-drift/formstate/pkg/adapter"
	"github.com/go-drift/formstate/pkg/form"
)

func TestTextSetTextMarksDirty(t *testing.T) {
	var changed []string
	text := adapter.NewText(adapter.TextConfig{
		OnChanged: func(value string) { changed = append(changed, value) },
	})

	text.SetText("a")
	text.SetText("ab")

	if text.Text() != "ab" {
		t.Errorf("expected text %q, got %q", "ab", text.Text())
	}
	if !text.Field().IsDirty() {
		t.Error("SetText did not mark the field dirty")
	}
	if got := strings.Join(changed, ","); got != "a,ab" {
		t.Errorf("expected OnChanged per edit, got %q", got)
	}
}

// An editing controller echoing the current text back must not register as
// a second user edit.
func TestTextSetTextIgnoresUnchanged(t *testing.T) {
	edits := 0
	text := adapter.NewText(adapter.TextConfig{
		InitialText: "same",
		OnChanged:   func(string) { edits++ },
	})

	text.SetText("same")

	if edits != 0 {
		t.Errorf("unchanged text fired %d edits", edits)
	}
	if text.Field().IsDirty() {
		t.Error("unchanged text marked the field dirty")
	}
}

func TestTextCorrectTextStaysClean(t *testing.T) {
	ctrl := form.NewController(form.Config{})
	text := adapter.NewText(adapter.TextConfig{InitialText: "999"})
	text.Field().Mount(ctrl)

	text.CorrectText("100")

	if text.Text() != "100" {
		t.Errorf("expected corrected text %q, got %q", "100", text.Text())
	}
	if text.Field().IsDirty() {
		t.Error("correction marked the field dirty")
	}
	if ctrl.Generation() != 0 {
		t.Errorf("correction notified the form, generation %d", ctrl.Generation())
	}
}

func TestTextInForm(t *testing.T) {
	ctrl := form.NewController(form.Config{Autovalidate: true})
	text := adapter.NewText(adapter.TextConfig{
		Validator: func(value string) string {
			if value == "" {
				return "required"
			}
			return ""
		},
	})
	text.Field().Mount(ctrl)
	ctrl.AddListener(ctrl.Rebuild)

	ctrl.Rebuild()
	if text.HasError() {
		t.Fatalf("untouched adapter surfaced error %q", text.ErrorText())
	}

	text.SetText("x")
	text.SetText("")
	if got := text.ErrorText(); got != "required" {
		t.Errorf("expected error %q after edits, got %q", "required", got)
	}
}

func TestSelectInitialMustMatchOneOption(t *testing.T) {
	options := []adapter.Option[string]{
		{Value: "a", Label: "A"},
		{Value: "b", Label: "B"},
	}

	tests := []struct {
		name    string
		cfg     adapter.SelectConfig[string]
		wantErr bool
	}{
		{
			name: "exactly one match",
			cfg:  adapter.SelectConfig[string]{Options: options, InitialValue: "a"},
		},
		{
			name:    "no match",
			cfg:     adapter.SelectConfig[string]{Options: options, InitialValue: "z"},
			wantErr: true,
		},
		{
			name: "duplicate match",
			cfg: adapter.SelectConfig[string]{
				Options: []adapter.Option[string]{
					{Value: "a"}, {Value: "a"},
				},
				InitialValue: "a",
			},
			wantErr: true,
		},
		{
			name: "only match is disabled",
			cfg: adapter.SelectConfig[string]{
				Options: []adapter.Option[string]{
					{Value: "a", Disabled: true}, {Value: "b"},
				},
				InitialValue: "a",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				recovered := recover()
				if tt.wantErr && recovered == nil {
					t.Error("expected construction to panic")
				}
				if !tt.wantErr && recovered != nil {
					t.Errorf("unexpected panic: %v", recovered)
				}
			}()
			adapter.NewSelect(tt.cfg)
		})
	}
}

func TestSelectRejectsUndeclaredValues(t *testing.T) {
	sel := adapter.NewSelect(adapter.SelectConfig[string]{
		Options: []adapter.Option[string]{
			{Value: "basic", Label: "Basic"},
			{Value: "pro", Label: "Pro"},
			{Value: "legacy", Label: "Legacy", Disabled: true},
		},
		InitialValue: "basic",
	})

	if sel.Select("enterprise") {
		t.Error("undeclared value was accepted")
	}
	if sel.Select("legacy") {
		t.Error("disabled option was accepted")
	}
	if sel.Value() != "basic" {
		t.Errorf("rejected selections changed value to %q", sel.Value())
	}
	if sel.Field().IsDirty() {
		t.Error("rejected selections marked the field dirty")
	}

	if !sel.Select("pro") {
		t.Error("declared enabled option was rejected")
	}
	if sel.Value() != "pro" {
		t.Errorf("expected selection %q, got %q", "pro", sel.Value())
	}
	if !sel.Field().IsDirty() {
		t.Error("selection did not mark the field dirty")
	}
}

func TestSelectReselectCurrentIsNoOp(t *testing.T) {
	ctrl := form.NewController(form.Config{})
	sel := adapter.NewSelect(adapter.SelectConfig[int]{
		Options:      []adapter.Option[int]{{Value: 1}, {Value: 2}},
		InitialValue: 1,
	})
	sel.Field().Mount(ctrl)

	if !sel.Select(1) {
		t.Error("reselecting the current value must report accepted")
	}
	if sel.Field().IsDirty() {
		t.Error("reselecting the current value marked the field dirty")
	}
	if ctrl.Generation() != 0 {
		t.Errorf("reselecting the current value notified the form, generation %d", ctrl.Generation())
	}
}

func TestSelectSaveAndReset(t *testing.T) {
	ctrl := form.NewController(form.Config{})
	saved := ""
	sel := adapter.NewSelect(adapter.SelectConfig[string]{
		Options:      []adapter.Option[string]{{Value: "a"}, {Value: "b"}},
		InitialValue: "a",
		OnSaved:      func(value string) { saved = value },
	})
	sel.Field().Mount(ctrl)

	sel.Select("b")
	ctrl.Save()
	if saved != "b" {
		t.Errorf("expected saved selection %q, got %q", "b", saved)
	}

	ctrl.Reset()
	if sel.Value() != "a" {
		t.Errorf("expected reset selection %q, got %q", "a", sel.Value())
	}
}
