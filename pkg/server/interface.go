/*
Package server exposes an autocomplete controller over msgpack IPC.

A client (an editor plugin, a GUI toolkit binding) owns the real text field
and popup. It streams events to stdin and applies the commands it gets back
on stdout. Each message is a single msgpack map.

The client first reports geometry, then forwards field events:

	{"id": "1", "type": "metrics", "metrics": {"cw": 8, "ch": 16, "fx": 10, "fy": 20, "fw": 200, "fh": 24, "sh": 900}}
	{"id": "2", "type": "focus"}
	{"id": "3", "type": "text", "text": "an"}
	{"id": "4", "type": "key", "key": "down"}

Every event is answered with the commands the controller issued, in order,
and whether a key was consumed:

	{"id": "4", "consumed": true, "state": "matches", "cmds": [{"op": "selection", "index": 1}], "t": 12}

The client applies "text" commands to its field and reports the resulting
text event back as usual; the controller ignores that echo.

Supported event types: metrics, text, key, focus, blur, vocab.
*/
package server

import "github.com/bastiangx/acfield/pkg/autocomplete"

// Event is one inbound message.
type Event struct {
	ID      string   `msgpack:"id"`
	Type    string   `msgpack:"type"`
	Text    string   `msgpack:"text,omitempty"`
	Key     string   `msgpack:"key,omitempty"`
	Metrics *Metrics `msgpack:"metrics,omitempty"`
}

// Metrics carries the client's character size and field geometry.
type Metrics struct {
	CharWidth    float64 `msgpack:"cw"`
	CharHeight   float64 `msgpack:"ch"`
	FieldX       float64 `msgpack:"fx"`
	FieldY       float64 `msgpack:"fy"`
	FieldWidth   float64 `msgpack:"fw"`
	FieldHeight  float64 `msgpack:"fh"`
	ScreenHeight float64 `msgpack:"sh"`
}

// Response answers one event.
type Response struct {
	ID        string                 `msgpack:"id"`
	Consumed  bool                   `msgpack:"consumed,omitempty"`
	State     string                 `msgpack:"state"`
	Commands  []autocomplete.Command `msgpack:"cmds,omitempty"`
	Vocab     []string               `msgpack:"vocab,omitempty"`
	TimeTaken int64                  `msgpack:"t"`
}

// StatusResponse is sent once the server is ready.
type StatusResponse struct {
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for a failed event
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
