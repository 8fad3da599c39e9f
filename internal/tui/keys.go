package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	IntervalUp   key.Binding
	IntervalDown key.Binding
	CueUp        key.Binding
	CueDown      key.Binding
	Toggle       key.Binding
	Trigger      key.Binding
	Edit         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Trigger, k.Edit, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.IntervalUp, k.IntervalDown, k.CueUp, k.CueDown},
		{k.Toggle, k.Trigger, k.Edit},
		{k.Help, k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		IntervalUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "interval +1 min"),
		),
		IntervalDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "interval -1 min"),
		),
		CueUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "cue +1 s"),
		),
		CueDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "cue -1 s"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "e"),
			key.WithHelp("space", "enable/disable"),
		),
		Trigger: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "trigger now"),
		),
		Edit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
