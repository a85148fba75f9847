// Package main runs midihub, the network MIDI hub used by midiwire during
// development and on private networks. It queues published MIDI events per
// named port and fans them out live to websocket subscribers.
//
// HTTP API
//
//	POST /ports/{port}/events
//	    Publish one Event to {port}. The payload's data bytes must form
//	    exactly one complete MIDI message or the event is rejected with 400.
//	    If the event timestamp is zero, the server fills it in.
//
//	GET /ports/{port}/events?limit=N
//	    Remove and return up to N queued events for {port}, oldest first. If
//	    limit is absent or exceeds the queue length, the queue is drained.
//
//	GET /ws?port={port}
//	    Upgrade to websocket and stream events published to {port} as JSON.
//
//	GET /healthz
//	    Liveness probe; reports queue depths and subscriber count.
//
//	GET /metrics
//	    Prometheus metrics.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Per-port queues are bounded; the oldest event is dropped when full.
//   - Configuration comes from the environment, optionally via .env files:
//     MIDIHUB_PORT (default 8080), MIDIHUB_QUEUE_SIZE (default 256),
//     LOG_LEVEL.
package main
