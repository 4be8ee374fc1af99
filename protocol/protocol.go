// Package protocol defines the command verbs, the user-facing replies and the
// transcript record format used by the phonebook assistant. It can be used
// externally to build additional tooling around recorded sessions.
package protocol

// Command verbs understood by the assistant.
const (
	CmdHello  = "hello"
	CmdAdd    = "add"
	CmdChange = "change"
	CmdPhone  = "phone"
	CmdAll    = "all"
	CmdClose  = "close"
	CmdExit   = "exit"
)

// Fixed replies.
const (
	MsgGreeting       = "How can I help you?"
	MsgAdded          = "Contact added."
	MsgUpdated        = "Contact updated."
	MsgFarewell       = "Good bye!"
	MsgInvalidCommand = "Invalid command."
)

// Failure replies produced by the error translation layer.
const (
	MsgNeedNameAndPhone = "Give me name and phone please."
	MsgNeedName         = "Enter the name please."
	MsgNotFound         = "There is no contact with this name."
	MsgEmpty            = "No contacts saved yet."
	MsgExists           = "Contact already exists."
	MsgInternal         = "Something went wrong."
)

// Verbs returns every verb the assistant accepts, exit verbs included.
func Verbs() []string {
	return []string{CmdHello, CmdAdd, CmdChange, CmdPhone, CmdAll, CmdClose, CmdExit}
}

// Response is one transcript record: the raw command line and what the
// assistant answered.
type Response struct {
	Command   string `json:"command"`
	Reply     string `json:"reply"`
	Terminate bool   `json:"terminate,omitempty"` // true for close/exit
}
