// Package msgs provides L1 protocol support and all message schemas.
package msgs

// L1 protocol is communicated between the player controller and L2
// clients, and uses hardware-agnostic primitives: the raw serial
// protocol of the MP3 device never crosses this layer.
//
// Producer: L1 controller
// Consumer: L2 clients (CLI, monitors, automation)
