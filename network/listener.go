package network

import "github.com/automoto/shootr/shared/netcomponents"

// Listener receives connection events. All methods are called from the
// client's run loop goroutine, one at a time.
type Listener interface {
	// OnOpen is called once the link is open.
	OnOpen()
	// OnMessage is called with every successfully decoded snapshot.
	OnMessage(s netcomponents.Snapshot)
	// OnClose is called when the link goes down for any reason other than
	// Close. A reconnect is scheduled right after.
	OnClose(err error)
	// OnError is called for dial and transport errors, before OnClose.
	OnError(err error)
}

type nopListener struct{}

func (nopListener) OnOpen()                          {}
func (nopListener) OnMessage(netcomponents.Snapshot) {}
func (nopListener) OnClose(error)                    {}
func (nopListener) OnError(error)                    {}
