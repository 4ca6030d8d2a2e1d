// Package goroutine contains the panic-contained goroutine launcher used by
// the bot's background loops.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/haven-rp/warden/internal/shared/logger"
)

// SafeGo runs fn on its own goroutine. A panic in fn is recovered and logged
// with its stack under the given name, so a broken updater loop or cleanup
// task cannot take the whole process down with it.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("background task panicked",
					"task", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
