package events

import (
	"testing"
)

type fakeHandler struct {
	kinds    []IntentKind
	received []Intent
}

func (f *fakeHandler) HandleIntent(intent Intent) {
	f.received = append(f.received, intent)
}

func (f *fakeHandler) IntentKinds() []IntentKind {
	return f.kinds
}

func TestDispatcherRoutesByKind(t *testing.T) {
	d := NewDispatcher()
	audio := &fakeHandler{kinds: []IntentKind{IntentBlip, IntentBoom}}
	hud := &fakeHandler{kinds: []IntentKind{IntentCombo}}
	d.Register(audio)
	d.Register(hud)

	d.Emit(Intent{Kind: IntentBlip, Payload: &BlipPayload{Variant: 3}})
	d.Emit(Intent{Kind: IntentCombo, Payload: &ComboPayload{Count: 7}})
	d.Emit(Intent{Kind: IntentFireworks}) // nobody registered

	if len(audio.received) != 1 || audio.received[0].Kind != IntentBlip {
		t.Errorf("audio received %v", audio.received)
	}
	if len(hud.received) != 1 || hud.received[0].Kind != IntentCombo {
		t.Errorf("hud received %v", hud.received)
	}
}

func TestDispatcherMultipleHandlersInOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	first := &orderedHandler{name: "first", order: &order}
	second := &orderedHandler{name: "second", order: &order}
	d.Register(first)
	d.Register(second)

	d.Emit(Intent{Kind: IntentBoom})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("handler order = %v, want registration order", order)
	}
	if d.HandlerCount(IntentBoom) != 2 {
		t.Errorf("handler count = %d, want 2", d.HandlerCount(IntentBoom))
	}
}

type orderedHandler struct {
	name  string
	order *[]string
}

func (o *orderedHandler) HandleIntent(Intent) {
	*o.order = append(*o.order, o.name)
}

func (o *orderedHandler) IntentKinds() []IntentKind {
	return []IntentKind{IntentBoom}
}

func TestCommandStrings(t *testing.T) {
	cases := map[Command]string{
		CommandResetProgress:        "reset-progress",
		CommandToggleExplosions:     "toggle-explosions",
		CommandToggleBlips:          "toggle-blips",
		CommandToggleChars:          "toggle-chars",
		CommandToggleShake:          "toggle-shake",
		CommandToggleSound:          "toggle-sound",
		CommandToggleFireworks:      "toggle-fireworks",
		CommandToggleReducedEffects: "toggle-reduced-effects",
		CommandShowPanel:            "show-panel",
	}
	for cmd, want := range cases {
		if cmd.String() != want {
			t.Errorf("%d.String() = %q, want %q", cmd, cmd.String(), want)
		}
	}
}
