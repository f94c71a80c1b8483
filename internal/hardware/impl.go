// Package hardware provides hardware accelerated implementations.
package hardware

import "github.com/areeburrub/ascon/internal/api"

// Factory is a factory that will construct hardware backed Ascon
// implementations if supported. It is nil when no accelerated backend
// exists for the platform; the portable backend is used instead.
var Factory api.Factory
