package greeter

// NameEntered is published after the user entered their name (or the
// placeholder was substituted for it).
const NameEntered = "greeter.name_entered"

// NameEnteredData is the payload of NameEntered events.
type NameEnteredData struct {
	Name string
}
