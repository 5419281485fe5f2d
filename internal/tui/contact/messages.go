package contact

// OptionChosenMsg is sent when a catalog card is activated.
type OptionChosenMsg struct {
	ID string
}

// SubmitResultMsg carries the outcome of delivering a submission.
type SubmitResultMsg struct {
	Err error
}

// MessageEditedMsg carries the message text back from $EDITOR.
type MessageEditedMsg struct {
	Content string
}

// FocusExitMsg is sent by a step when focus moves past its last (Forward)
// or first (!Forward) element, so the wizard can move it to the buttons.
type FocusExitMsg struct {
	Forward bool
}
