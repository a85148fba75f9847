// Package hub implements the midihub core: named in-memory ports that
// accept validated MIDI events, queue them for polling clients and fan them
// out live to websocket subscribers.
//
// Events are validated on publish by parsing their wire bytes; an event
// whose payload is not a single complete MIDI message is rejected. Queues
// are bounded per port and drop the oldest event when full. Slow websocket
// clients are disconnected rather than allowed to stall the broadcast loop.
package hub
